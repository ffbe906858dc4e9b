package jskema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	jskema "github.com/reoring/jskema"
)

func TestInstancePath_Pointer(t *testing.T) {
	assert.Equal(t, "/", jskema.InstancePath(nil).Pointer())
	assert.Equal(t, "/a/0", jskema.InstancePath{"a"}.PushIndex(0).Pointer())
	assert.Equal(t, "/a~1b/c~0d", jskema.InstancePath{"a/b", "c~d"}.String())
}

func TestInstancePath_PushDoesNotAlias(t *testing.T) {
	base := make(jskema.InstancePath, 1, 8)
	base[0] = "root"
	a := base.Push("a")
	b := base.Push("b")
	assert.Equal(t, jskema.InstancePath{"root", "a"}, a)
	assert.Equal(t, jskema.InstancePath{"root", "b"}, b)
	assert.Equal(t, jskema.InstancePath{"root"}, base)
}

func TestInstancePath_Clone(t *testing.T) {
	assert.Nil(t, jskema.InstancePath(nil).Clone())
	p := jskema.InstancePath{"x"}
	c := p.Clone()
	c[0] = "y"
	assert.Equal(t, "x", p[0])
}
