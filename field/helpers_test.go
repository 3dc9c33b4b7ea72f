package field_test

import (
	"testing"

	"github.com/0xalexb/userinput/element"

	"github.com/stretchr/testify/require"
)

func parseElement(t *testing.T, document string) *element.Node {
	t.Helper()

	root, err := element.Parse([]byte(document))
	require.NoError(t, err)

	return root
}
