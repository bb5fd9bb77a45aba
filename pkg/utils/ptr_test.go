package utils_test

import (
	"testing"

	"github.com/pseudomuto/selectql/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestPtr(t *testing.T) {
	v := 42
	p := utils.Ptr(v)
	require.Equal(t, 42, *p)

	*p = 7
	require.Equal(t, 42, v)
	require.NotSame(t, utils.Ptr("a"), utils.Ptr("a"))
}
