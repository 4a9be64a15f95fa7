package serializer_test

import (
	"testing"

	"github.com/Nigel2392/dsa/src/binarytree"
	"github.com/Nigel2392/dsa/src/serializer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializers(t *testing.T) {
	var source = binarytree.NewFromNode(binarytree.FromStructured(
		binarytree.Item(5, binarytree.Item(3), binarytree.Item(0x45)),
	))

	for _, name := range []string{"json", "pretty"} {
		t.Run(name, func(t *testing.T) {
			var s, ok = serializer.FromString(name)
			require.True(t, ok)

			var b, err = s.Serialize(source)
			require.NoError(t, err)

			var decoded binarytree.Tree[int]
			require.NoError(t, s.Deserialize(&decoded, b))
			assert.True(t, decoded.CompareShapeAndValues(source.Root()))
		})
	}
}

func TestIndentedJsonSerializer(t *testing.T) {
	var s = &serializer.IndentedJsonSerializer{Indent: "  "}
	var b, err = s.Serialize(binarytree.Item(1))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"item\": 1\n}", string(b))
}

func TestFromStringUnknown(t *testing.T) {
	var s, ok = serializer.FromString("xml")
	assert.False(t, ok)
	assert.Nil(t, s)
}
