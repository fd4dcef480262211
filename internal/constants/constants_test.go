package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleUser.Valid())
	assert.False(t, Role("admin").Valid())
	assert.False(t, Role(" User").Valid())
	assert.False(t, Role("").Valid())
}

func TestTaskStatus_Valid(t *testing.T) {
	for _, s := range []TaskStatus{StatusPending, StatusInProgress, StatusCompleted} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, TaskStatus("Done").Valid())
	assert.False(t, TaskStatus("pending").Valid())
}
