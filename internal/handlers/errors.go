package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/httperr"
)

// traduz erros de negócio dos use cases para o status HTTP certo;
// qualquer outra coisa vira 500
func writeBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !asBusiness(err, &be) {
		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
		return
	}

	switch be.Code {
	case httperr.CodeSlotUnavailable:
		httperr.Conflict(c, be.Code, "O horário escolhido não está mais disponível.")
	case httperr.CodeInvalidTransition:
		httperr.Conflict(c, be.Code, "O agendamento não permite essa mudança de status.")
	case httperr.CodeNotAuthorized:
		httperr.Forbidden(c, be.Code, "Você não tem permissão sobre este agendamento.")
	case "appointment_not_found":
		httperr.NotFound(c, be.Code, "Agendamento não encontrado.")
	case "service_not_found":
		httperr.NotFound(c, be.Code, "Serviço não encontrado.")
	case "professional_inactive":
		httperr.NotFound(c, be.Code, "Profissional não está recebendo agendamentos.")
	case "too_soon":
		httperr.BadRequest(c, be.Code, "O horário precisa respeitar a antecedência mínima do profissional.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, be.Code, "Data ou horário inválido.")
	default:
		httperr.BadRequest(c, be.Code, "Requisição inválida.")
	}
}

func asBusiness(err error, target *httperr.BusinessError) bool {
	if be, ok := err.(httperr.BusinessError); ok {
		*target = be
		return true
	}
	return false
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Parâmetro '"+name+"' inválido.")
		return 0, false
	}
	return uint(id), true
}
