package distribution

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet_Contains(t *testing.T) {
	s := NewSet(KieDroolsWB, KieWB)

	require.True(t, s.Contains(KieDroolsWB))
	require.True(t, s.Contains(KieWB))
	require.False(t, s.Contains(KieWBMonitoring))
	require.Equal(t, 2, s.Len())
}

func TestSet_DuplicatesCollapse(t *testing.T) {
	s := NewSet(KieWB, KieWB, KieWB)
	require.Equal(t, 1, s.Len())
}

func TestSet_ZeroValueIsEmpty(t *testing.T) {
	var s Set
	require.Equal(t, 0, s.Len())
	require.False(t, s.Contains(KieWB))
	require.Empty(t, s.Slice())
}

func TestSet_SliceUsesDeclarationOrder(t *testing.T) {
	s := NewSet(KieWBMonitoring, "zz-custom", KieDroolsWB, "aa-custom")

	require.Equal(t, []Distribution{KieDroolsWB, KieWBMonitoring, "aa-custom", "zz-custom"}, s.Slice())
}

func TestSet_SliceIsFresh(t *testing.T) {
	s := NewSet(KieWB)
	got := s.Slice()
	got[0] = KieDroolsWB

	require.Equal(t, []Distribution{KieWB}, s.Slice())
}
