package httperr

var messages = map[string]string{
	"invalid_request":            "Dados inválidos.",
	"invalid_email_domain":       "O domínio do e-mail não existe.",
	"invalid_date":               "Data inválida. Use o formato YYYY-MM-DD.",
	"invalid_date_range":         "A data de início deve ser anterior à data de fim.",
	"too_soon":                   "A reserva deve ser feita com pelo menos 4 dias de antecedência.",
	"cabin_not_available":        "A cabana não está disponível nas datas selecionadas.",
	"cabin_not_found":            "Cabana não encontrada.",
	"client_not_found":           "Cliente não encontrado.",
	"reservation_not_found":      "Reserva não encontrada.",
	"invalid_state":              "Transição de estado inválida.",
	"equipment_not_found":        "Equipamento não encontrado.",
	"invalid_quantity":           "A quantidade deve ser maior que zero.",
	"insufficient_stock":         "Estoque insuficiente.",
	"payment_method_required":    "Informe o método de pagamento.",
	"invalid_payment_method":     "Método de pagamento inválido.",
	"loan_not_found":             "Empréstimo não encontrado.",
	"invalid_target":             "Informe exatamente uma cabana ou um equipamento.",
	"invalid_category":           "Categoria de manutenção inválida.",
	"invalid_priority":           "Prioridade de manutenção inválida.",
	"worker_not_found":           "Trabalhador não encontrado.",
	"maintenance_not_found":      "Manutenção não encontrada.",
	"task_not_found":             "Tarefa não encontrada.",
	"preparation_not_found":      "Preparação não encontrada.",
	"survey_not_allowed":         "A pesquisa só pode ser respondida após a estadia.",
	"survey_already_sent":        "A pesquisa desta reserva já foi respondida.",
	"invalid_rating":             "As notas devem estar entre 1 e 5.",
	"forbidden":                  "Sem permissão para esta operação.",
	"invalid_month":              "Mês ou ano inválido.",
	"notification_not_found":     "Notificação não encontrada.",
	"email_already_exists":       "E-mail já cadastrado.",
	"invalid_credentials":        "Credenciais inválidas.",
	"user_not_found":             "Usuário não encontrado.",
	"invalid_status":             "Status inválido.",
	"preparation_item_not_found": "Item de preparação não encontrado.",
	"invalid_payment_owner":      "O pagamento deve pertencer a uma reserva ou a um empréstimo.",
	"invalid_amount":             "Valor inválido.",
	"stock_inconsistent":         "Estoque inconsistente.",
	"unauthorized":               "Não autenticado.",
	"unknown_command":            "Comando desconhecido.",
}

func messageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}

// Message devolve o texto amigável do código (ou o próprio código).
func Message(code string) string {
	return messageFor(code)
}
