package dronelbl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClasses(t *testing.T) {
	names := ClassNames()
	assert.Len(t, names, NumClasses)
	assert.Equal(t, "pedestrian", names[0])
	assert.Equal(t, "motor", names[9])

	names[0] = "changed"
	assert.Equal(t, "pedestrian", ClassNames()[0], "ClassNames must return a copy")

	for id, name := range ClassNames() {
		got, ok := ClassID(name)
		assert.True(t, ok)
		assert.Equal(t, id, got)
		n, ok := ClassName(id)
		assert.True(t, ok)
		assert.Equal(t, name, n)
	}

	_, ok := ClassName(-1)
	assert.False(t, ok)
	_, ok = ClassName(NumClasses)
	assert.False(t, ok)
	_, ok = ClassID("ignored regions")
	assert.False(t, ok)
}
