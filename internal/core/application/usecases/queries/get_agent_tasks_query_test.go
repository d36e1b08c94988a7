package queries_test

import (
	"testing"

	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAgentTasksQuery_Valid(t *testing.T) {
	query, err := queries.NewGetAgentTasksQuery("agent-7")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "agent-7", query.AgentID())
}

func TestNewGetAgentTasksQuery_EmptyAgentID(t *testing.T) {
	_, err := queries.NewGetAgentTasksQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetAgentTasksQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAgentTasksQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAgentTasksQueryIsNotConstructed)
}
