package shortlink

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dengnews/shortlink/internal/content"
	"github.com/jaevor/go-nanoid"
)

// CodeFunc produces one candidate short code per call.
type CodeFunc func() string

// NewCodeFunc returns a generator drawing CodeLength symbols from Alphabet.
func NewCodeFunc() (CodeFunc, error) {
	gen, err := nanoid.CustomASCII(Alphabet, CodeLength)
	if err != nil {
		return nil, fmt.Errorf("build code generator: %w", err)
	}

	return gen, nil
}

// Generator mints short links, reusing the existing link for a
// (slug, locale) pair when one is already registered.
type Generator struct {
	store   MappingStore
	newCode CodeFunc
}

// NewGenerator creates a generator backed by the given mapping store.
func NewGenerator(store MappingStore, newCode CodeFunc) *Generator {
	return &Generator{
		store:   store,
		newCode: newCode,
	}
}

// GetOrCreate returns the short link for (slug, locale), minting one when the
// pair has none. The boolean reports whether a new link was created. Two
// concurrent calls for a new pair may both insert; that is accepted,
// uniqueness is only guaranteed on the code itself.
func (g *Generator) GetOrCreate(
	ctx context.Context, slug string, locale content.Locale,
) (*ShortLink, bool, error) {
	existing, err := g.store.GetByTarget(ctx, slug, locale)
	if err == nil {
		return existing, false, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, false, fmt.Errorf("look up existing link: %w", err)
	}

	for attempt := 0; attempt < MaxGenerateAttempts; attempt++ {
		code := g.newCode()

		_, err := g.store.GetByCode(ctx, code)
		if err == nil {
			// Collision, redraw.
			continue
		}

		if !errors.Is(err, ErrNotFound) {
			return nil, false, fmt.Errorf("check code collision: %w", err)
		}

		link := &ShortLink{
			Code:      code,
			Slug:      slug,
			Locale:    locale,
			CreatedAt: time.Now().UTC(),
		}

		err = g.store.Save(ctx, link)
		if errors.Is(err, ErrCodeTaken) {
			// Lost the insert race for this code, redraw.
			continue
		}

		if err != nil {
			return nil, false, fmt.Errorf("save link: %w", err)
		}

		return link, true, nil
	}

	return nil, false, ErrCodeSpaceExhausted
}
