package service

import (
	"fmt"
	"strings"

	"github.com/spec-kit/user-registry/internal/domain"
)

const (
	reportHeader = "--- Relatório de Usuários ---"
	reportEmpty  = "Nenhum usuário cadastrado."
)

// RenderUserReport formats users as the plain-text registry report, one line per user.
func RenderUserReport(users []domain.User) string {
	var b strings.Builder
	b.WriteString(reportHeader)
	b.WriteString("\n")

	if len(users) == 0 {
		b.WriteString(reportEmpty)
		b.WriteString("\n")
		return b.String()
	}

	for _, user := range users {
		fmt.Fprintf(&b, "ID: %s | Nome: %s | Email: %s | Idade: %d | Status: %s | Admin: %s\n",
			user.ID, user.Name, user.Email, user.Age, user.Status, yesNo(user.IsAdmin))
	}
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "sim"
	}
	return "não"
}
