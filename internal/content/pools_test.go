package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedPacks(t *testing.T) {
	p, err := Load()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(p.Cipher.Symbols), maxElements)
	assert.GreaterOrEqual(t, len(p.Cipher.Alphabet), 2*maxElements)
	assert.NotEmpty(t, p.Grid.Themes)
	assert.GreaterOrEqual(t, len(p.People.Names), maxElements)
	assert.NotEmpty(t, p.Ordering.Scenarios)
	assert.GreaterOrEqual(t, len(p.Scheduling.Slots), maxElements-1)
	assert.NotEmpty(t, p.Social.Settings)
	assert.NotEmpty(t, p.CommonSense)
	assert.NotEmpty(t, p.Dilemma)
	assert.NotEmpty(t, p.Agent)
	assert.NotEmpty(t, p.Themes)
}

// Every grid theme must be wide enough for the expert difficulty in all
// of its categories, or the assembler would index out of range.
func TestGridThemesAreWideEnough(t *testing.T) {
	p, err := Load()
	require.NoError(t, err)

	for _, theme := range p.Grid.Themes {
		assert.GreaterOrEqual(t, len(theme.Primary.Elements), maxElements, "theme %q", theme.Name)
		require.GreaterOrEqual(t, len(theme.Categories), 3, "theme %q", theme.Name)
		for _, cat := range theme.Categories {
			assert.GreaterOrEqual(t, len(cat.Elements), maxElements, "theme %q category %q", theme.Name, cat.Name)
		}
	}
}

func TestScenariosCarryEliminationsForEveryWrongOption(t *testing.T) {
	p, err := Load()
	require.NoError(t, err)

	for _, list := range [][]Scenario{p.CommonSense, p.Dilemma, p.Agent} {
		for _, sc := range list {
			require.GreaterOrEqual(t, len(sc.Options), maxElements, "scenario %q", sc.Title)
			assert.Contains(t, sc.Options, sc.Answer, "scenario %q", sc.Title)
			for _, o := range sc.Options {
				if o == sc.Answer {
					continue
				}
				assert.NotEmpty(t, sc.Eliminations[o], "scenario %q lacks prose for %q", sc.Title, o)
			}
		}
	}
}

func TestValidateRejectsBrokenPools(t *testing.T) {
	fresh := func(t *testing.T) *Pools {
		p, err := Load()
		require.NoError(t, err)
		return p
	}

	t.Run("duplicate symbol", func(t *testing.T) {
		p := fresh(t)
		p.Cipher.Symbols[1] = p.Cipher.Symbols[0]
		assert.Error(t, p.validate())
	})
	t.Run("narrow alphabet", func(t *testing.T) {
		p := fresh(t)
		p.Cipher.Alphabet = "ABC"
		assert.Error(t, p.validate())
	})
	t.Run("missing elimination", func(t *testing.T) {
		p := fresh(t)
		sc := &p.Dilemma[0]
		for _, o := range sc.Options {
			if o != sc.Answer {
				delete(sc.Eliminations, o)
				break
			}
		}
		assert.Error(t, p.validate())
	})
	t.Run("no themes", func(t *testing.T) {
		p := fresh(t)
		p.Themes = nil
		assert.Error(t, p.validate())
	})
}
