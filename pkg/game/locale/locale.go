// Package locale loads the player-facing message catalogue. Messages are
// looked up by key (e.g. "OUT_OF_RANGE") and may contain renderer markup such
// as ITEM{...}.
package locale

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed *.po
var catalogs embed.FS

// DefaultLanguage is the language used when none is configured
const DefaultLanguage = "en"

// Catalog is a parsed message catalogue for one language
type Catalog struct {
	lang string
	po   *gotext.Po

	// get is used for runtime key lookups. A function value keeps go vet's
	// printf check from treating every lookup as a constant format string.
	get func(string, ...interface{}) string
}

// Load parses the embedded catalogue for lang
func Load(lang string) (*Catalog, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		lang = DefaultLanguage
	}
	buf, err := catalogs.ReadFile(lang + ".po")
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", lang, err)
	}
	po := gotext.NewPo()
	po.Parse(buf)
	return &Catalog{lang: lang, po: po, get: po.Get}, nil
}

// Language returns the catalogue's language code
func (c *Catalog) Language() string {
	return c.lang
}

// T translates key and formats it with args. Unknown keys are formatted as-is.
func (c *Catalog) T(key string, args ...any) string {
	if c == nil || c.get == nil {
		return fmt.Sprint(append([]any{key}, args...)...)
	}
	return c.get(key, args...)
}

var (
	defaultMu      sync.RWMutex
	defaultCatalog *Catalog
)

// SetDefault replaces the catalogue used by T
func SetDefault(c *Catalog) {
	defaultMu.Lock()
	defaultCatalog = c
	defaultMu.Unlock()
}

// Default returns the catalogue used by T, loading the default language on
// first use
func Default() *Catalog {
	defaultMu.RLock()
	c := defaultCatalog
	defaultMu.RUnlock()
	if c != nil {
		return c
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultCatalog == nil {
		loaded, err := Load(DefaultLanguage)
		if err != nil {
			// The default catalogue is embedded; failing here means a broken build.
			panic(err)
		}
		defaultCatalog = loaded
	}
	return defaultCatalog
}

// T translates key with the default catalogue
func T(key string, args ...any) string {
	return Default().T(key, args...)
}
