package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/user-registry/internal/domain"
	"github.com/spec-kit/user-registry/internal/service"
)

func TestRenderUserReport_Empty(t *testing.T) {
	report := service.RenderUserReport(nil)
	assert.Equal(t, "--- Relatório de Usuários ---\nNenhum usuário cadastrado.\n", report)
}

func TestRenderUserReport_OneLinePerUserInOrder(t *testing.T) {
	users := []domain.User{
		{ID: "id-1", Name: "Alice", Email: "alice@email.com", Age: 28, Status: domain.UserStatusActive},
		{ID: "id-2", Name: "Bob", Email: "bob@email.com", Age: 32, Status: domain.UserStatusInactive, IsAdmin: true},
	}

	lines := strings.Split(strings.TrimSuffix(service.RenderUserReport(users), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "--- Relatório de Usuários ---", lines[0])
	assert.Equal(t, "ID: id-1 | Nome: Alice | Email: alice@email.com | Idade: 28 | Status: ativo | Admin: não", lines[1])
	assert.Equal(t, "ID: id-2 | Nome: Bob | Email: bob@email.com | Idade: 32 | Status: inativo | Admin: sim", lines[2])
}
