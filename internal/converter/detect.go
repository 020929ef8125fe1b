package converter

import (
	"strings"

	"github.com/ginjaninja78/homebank-converter/internal/config"
	"github.com/ginjaninja78/homebank-converter/internal/types"
)

// DetectFormat picks the descriptor whose DetectPrefix starts the first line
// of the file. Banks with several account types (DKB cash vs. Visa) mark the
// export this way:
//
//	"Kontonummer:";"DE01234500001234567891 / Girokonto";
//	"Kreditkarte:";"1234********6789";
func DetectFormat(content string, candidates []config.FormatDescriptor) (config.FormatDescriptor, error) {
	firstLine := content
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		firstLine = content[:i]
	}

	for _, f := range candidates {
		if f.DetectPrefix != "" && strings.HasPrefix(firstLine, f.DetectPrefix) {
			return f, nil
		}
	}

	return config.FormatDescriptor{}, &types.InputFormatError{
		Reason: "can't recognise account type, is this a valid export file?",
	}
}
