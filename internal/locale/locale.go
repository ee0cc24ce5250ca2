// Package locale is a thin, optional binding to the OS locale. A failure
// here is cosmetic: callers always get a usable tag and the error never
// travels further than a log line. Deliberately decoupled from the
// lifecycle gate.
package locale

import (
	golocale "github.com/jeandeaual/go-locale"

	"github.com/luminaos/lumina-welcome/internal/logging"
)

// DefaultTag is the fallback when the OS locale cannot be determined.
const DefaultTag = "en-US"

// Current returns the user's locale as a BCP 47 tag, falling back to
// DefaultTag when the OS query fails.
func Current(logger *logging.Logger) string {
	tag, err := golocale.GetLocale()
	if err != nil || tag == "" {
		logger.Warn().Err(err).Msg("Could not determine OS locale, using default")
		return DefaultTag
	}
	return tag
}
