package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestGroupNameUniquePerBranch(t *testing.T) {
	s, err := schema.Parse(&GroupModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	idx, ok := s.ParseIndexes()["uq_groups_branch_name"]
	require.True(t, ok, "composite unique index on (branch, name) must exist")
	assert.Equal(t, "UNIQUE", idx.Class)

	cols := make([]string, 0, len(idx.Fields))
	for _, f := range idx.Fields {
		cols = append(cols, f.DBName)
	}
	assert.ElementsMatch(t, []string{"group_branch_id", "group_name"}, cols)
}

func TestEnrollmentPairUnique(t *testing.T) {
	s, err := schema.Parse(&StudentGroupModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	idx, ok := s.ParseIndexes()["uq_student_groups_pair"]
	require.True(t, ok, "composite unique index on (group, student) must exist")
	assert.Equal(t, "UNIQUE", idx.Class)

	cols := make([]string, 0, len(idx.Fields))
	for _, f := range idx.Fields {
		cols = append(cols, f.DBName)
	}
	assert.ElementsMatch(t, []string{"student_group_group_id", "student_group_student_id"}, cols)
}
