package api

import (
	"github.com/atuservicios/servicio-api/schema"
	"github.com/atuservicios/servicio-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1002: "invalid email or password",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrAccountTaken.Error(),
		1101: "account not found",
		1102: "the account is not a provider",

		1200: store.ErrRequestNotExist.Error(),
		1201: store.ErrInvalidServiceType.Error(),
		1202: "the request is not visible to this account",
		1203: "the request does not allow this status change",

		1300: schema.ErrEmptyMessageText.Error(),
		1301: schema.ErrMessageTextTooLong.Error(),
		1302: "the request no longer accepts messages",

		1400: "unknown address",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidCredentials         = errorJSON(1002)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)
	errorNotProvider     = errorJSON(1102)

	errorRequestNotExist      = errorJSON(1200)
	errorUnknownServiceType   = errorJSON(1201)
	errorRequestNotVisible    = errorJSON(1202)
	errorTransitionNotAllowed = errorJSON(1203)

	errorEmptyMessage   = errorJSON(1300)
	errorMessageTooLong = errorJSON(1301)
	errorRequestClosed  = errorJSON(1302)

	errorUnknownAddress = errorJSON(1400)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
