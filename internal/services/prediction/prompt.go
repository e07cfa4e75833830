package prediction

import (
	"fmt"
	"strings"
)

// Inputs are the user-supplied and computed fields the prompt is built from.
type Inputs struct {
	Name               string
	DOB                string
	TOB                string
	NormalizedLocation string
	Age                *int // nil = unknown
}

// The report is produced in Odia; the instruction block is fixed, not
// user-selectable.
const (
	ageUnknownOdia = "ଅଜଣା ବୟସ"
	yearsOdia      = "ବର୍ଷ"
)

// buildPrompt assembles the instruction block sent to the generation model.
// It is a pure function of its inputs: same report fields, same prompt.
//
// The prompt asks for eight numbered sections (today's reading, 6-12 month
// outlook, 2-5 year outlook, career sector, marriage-timing range, financial
// guidance, lucky color with reason, five action tips), forbids claiming
// certain future outcomes, and requests bullet-style formatting.
func buildPrompt(in Inputs) string {
	ageStr := ageUnknownOdia
	if in.Age != nil {
		ageStr = fmt.Sprintf("%d %s", *in.Age, yearsOdia)
	}

	return strings.TrimSpace(fmt.Sprintf(`
ଆପଣ ଜଣେ ପ୍ରୋଫେସନାଲ୍ ଓଡ଼ିଆ ଜ୍ୟୋତିଷୀ (astrologer)।
ତଳେ ଉପଯୋଗକର୍ତ୍ତାଙ୍କ ତଥ୍ୟ ଦିଆଯାଇଛି:

ନାମ: %s
ଜନ୍ମତାରିଖ: %s
ଜନ୍ମ ସମୟ: %s
ବୟସ: %s
ସ୍ଥାନ: %s

ଦୟାକରି ସହଜ ଓ ପଠନଯୋଗ୍ୟ ଭାବରେ ଭାଗ କରି ଦିଅନ୍ତୁ:

1. ଆଜିର ରାଶିଫଳ (ସଂକ୍ଷିପ୍ତ)
2. ଅଗାମୀ 6-12 ମାସ ଭବିଷ୍ୟତ ପର୍ଯ୍ୟାଳୋଚନା
3. ଦୀର୍ଘ ଭବିଷ୍ୟତ (2-5 ବର୍ଷ) ଦୃଷ୍ଟିକୋଣ
4. ଚାକିରି / କ୍ୟାରିଅର କେଉଁ କ୍ଷେତ୍ରରେ ବଢ଼ିପାରିବ (ଉଦାହରଣ: IT, ଗଭ ଜବ୍, ଶିକ୍ଷା, ବ୍ୟବସାୟ)
5. ବିବାହର ସମ୍ଭାବ୍ୟ ସମୟ (ବର୍ଷ ରେଞ୍ଜ୍, ନିଶ୍ଚିତ ତାରିଖ ନୁହେଁ)
6. ଆର୍ଥିକ ସ୍ଥିତି ଓ ମନି ମ୍ୟାନେଜ୍ମେଣ୍ଟ ପରାମର୍ଶ
7. ଭଲ / ଭାଗ୍ୟଶାଳୀ ରଙ୍ଗ (କାହିଁକି)
8. 5ଟି ପ୍ରାୟୋଗିକ ପଦକ୍ଷେପ (Action Tips)

ଶୈଳୀ: ସକାରାତ୍ମକ, ଉତ୍ସାହଜନକ, ବ୍ୟବହାରିକ। କୌଣସି ନିଶ୍ଚିତ ଭବିଷ୍ୟତ ଭବିଷ୍ୟବାଣୀ ନ ଦିଅ।
ପଢ଼ିବାର ସୁବିଧା ପାଇଁ ବୁଲେଟ୍/ new line ବ୍ୟବହାର କରନ୍ତୁ।
`, in.Name, in.DOB, in.TOB, ageStr, in.NormalizedLocation))
}
