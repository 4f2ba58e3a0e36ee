package optimize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromConfigDefaultsToFullPipeline(t *testing.T) {
	reg, err := FromConfig(nil)
	require.NoError(t, err)
	assert.Len(t, reg.Passes(), len(defaultOrder))
}

func TestFromConfigDisablesNamedPass(t *testing.T) {
	reg, err := FromConfig(map[string]json.RawMessage{
		"minifyStyles": json.RawMessage("false"),
	})
	require.NoError(t, err)
	assert.Len(t, reg.Passes(), len(defaultOrder)-1)
	for _, p := range reg.Passes() {
		assert.NotEqual(t, "minifyStyles", p.Name())
	}
}

func TestFromConfigOverridesPassOptions(t *testing.T) {
	reg, err := FromConfig(map[string]json.RawMessage{
		"prefixIds": json.RawMessage(`{"prefix":"custom"}`),
	})
	require.NoError(t, err)

	var found *PrefixIds
	for _, p := range reg.Passes() {
		if pi, ok := p.(*PrefixIds); ok {
			found = pi
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "custom", found.opts.Prefix)
}

func TestFromConfigRejectsUnknownPassName(t *testing.T) {
	_, err := FromConfig(map[string]json.RawMessage{
		"notAPass": json.RawMessage("{}"),
	})
	assert.Error(t, err)
}
