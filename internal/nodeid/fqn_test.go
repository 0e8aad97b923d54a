// internal/nodeid/fqn_test.go
package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFQN_String(t *testing.T) {
	testCases := []struct {
		name        string
		fqn         FQN
		expectedStr string
	}{
		{name: "simple path", fqn: New("a", "b"), expectedStr: "a.b"},
		{name: "single segment", fqn: New("orders"), expectedStr: "orders"},
		{name: "empty", fqn: nil, expectedStr: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStr, tc.fqn.String())
		})
	}
}

func TestFQN_RoundTrip(t *testing.T) {
	testIDs := []string{
		"analytics.staging.stg_orders",
		"pkg.orders",
		"my-project.base.users_2024",
	}

	for _, id := range testIDs {
		t.Run(id, func(t *testing.T) {
			fqn, err := Parse(id)
			require.NoError(t, err)
			assert.Equal(t, id, fqn.String())

			again, err := Parse(fqn.String())
			require.NoError(t, err)
			assert.True(t, fqn.Equal(again))
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, id := range []string{"", "a..b", ".a", "a.", "a.b c", "a.-"} {
		t.Run(id, func(t *testing.T) {
			_, err := Parse(id)
			assert.Error(t, err)
		})
	}
}

func TestFQN_NameAndPackage(t *testing.T) {
	f := New("analytics", "staging", "stg_orders")
	assert.Equal(t, "stg_orders", f.Name())
	assert.Equal(t, "analytics", f.Package())

	var empty FQN
	assert.Equal(t, "", empty.Name())
	assert.Equal(t, "", empty.Package())
}

func TestFQN_WithName(t *testing.T) {
	f := New("analytics", "staging", "orders")
	renamed := f.WithName("test_orders")

	assert.Equal(t, "analytics.staging.test_orders", renamed.String())
	assert.Equal(t, "analytics.staging.orders", f.String(), "original must not be mutated")
	assert.Equal(t, "x", FQN(nil).WithName("x").String())
}

func TestFQN_HasPrefix(t *testing.T) {
	f := New("analytics", "staging", "orders")

	assert.True(t, f.HasPrefix(New("analytics")))
	assert.True(t, f.HasPrefix(New("analytics", "staging")))
	assert.True(t, f.HasPrefix(f))
	assert.True(t, f.HasPrefix(nil))
	assert.False(t, f.HasPrefix(New("analytics", "marts")))
	assert.False(t, f.HasPrefix(New("analytics", "staging", "orders", "x")))
}

func TestNew_Copies(t *testing.T) {
	segments := []string{"a", "b"}
	f := New(segments...)
	segments[0] = "z"
	assert.Equal(t, "a.b", f.String())
}
