package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_StringCoversEveryKind(t *testing.T) {
	for k := Kind(1); int(k) < KindTotal; k++ {
		assert.NotEqual(t, "unknown", k.String(), "kind %d has no name", k)
	}

	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "unknown", Kind(KindTotal).String())
}

func TestKind_Transformable(t *testing.T) {
	transformable := map[Kind]bool{
		KindEnum:     true,
		KindTypedef:  true,
		KindFunction: true,
		KindStruct:   true,
	}

	count := 0

	for k := Kind(1); int(k) < KindTotal; k++ {
		assert.Equal(t, transformable[k], k.Transformable(), "kind %s", k)

		if k.Transformable() {
			count++
		}
	}

	assert.Equal(t, 4, count)
	assert.Equal(t, 11, KindTotal-1-count, "pass-through kind count")
}
