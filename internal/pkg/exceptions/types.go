package exceptions

import (
	"fmt"
	"net/http"

	"onboarding-service/internal/pkg/constvars"
)

func ErrCannotParseJSON(err error) error {
	return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
}

func ErrCannotMarshalJSON(err error) error {
	return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
}

func ErrInputValidation(err error, clientMessage string) error {
	return BuildNewCustomError(err, http.StatusBadRequest, clientMessage, constvars.ErrDevValidationFailed)
}

func ErrServerDeadlineExceeded(err error) error {
	return BuildNewCustomError(err, http.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
}

func ErrSessionNotFound(err error) error {
	return BuildNewCustomError(err, http.StatusNotFound, constvars.ErrClientSessionNotFound, constvars.ErrDevSessionNotFound)
}

func ErrSessionBusy(err error) error {
	return BuildNewCustomError(err, http.StatusConflict, constvars.ErrClientSessionBusy, constvars.ErrDevSessionLockNotAcquired)
}

func ErrSessionTerminal(err error) error {
	return BuildNewCustomError(err, http.StatusConflict, constvars.ErrClientSessionFinished, constvars.ErrDevSessionTerminal)
}

func ErrEmergencyNotAcknowledged(err error) error {
	return BuildNewCustomError(err, http.StatusConflict, constvars.ErrClientEmergencyNotAcknowledged, constvars.ErrDevEmergencyNotAcknowledged)
}

func ErrEmergencyDelivery(err error) error {
	return BuildNewCustomError(err, http.StatusBadGateway, constvars.ErrClientEmergencyDelivery, constvars.ErrDevEmergencyPublishFailed)
}

func ErrUnknownQuestion(err error) error {
	return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientInvalidResponseValue, constvars.ErrDevUnknownQuestion)
}

func ErrInvalidResponseValue(err error) error {
	return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientInvalidResponseValue, constvars.ErrDevInvalidResponseValue)
}

func ErrTokenInvalidOrExpired(err error) error {
	return BuildNewCustomError(err, http.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevTokenInvalidOrExpired)
}

func ErrTokenGenerate(err error) error {
	return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevTokenGenerate)
}

func ErrSessionTokenMismatch(err error) error {
	return BuildNewCustomError(err, http.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevSessionTokenMismatch)
}

func ErrResultNotReady(err error) error {
	return BuildNewCustomError(err, http.StatusNotFound, constvars.ErrClientResultNotReady, constvars.ErrDevResultNotReady)
}

func ErrRedisSet(err error) error {
	return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
}

func ErrRedisGet(err error) error {
	return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGet)
}

func ErrRedisDelete(err error) error {
	return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
}

func ErrRedisSetNX(err error) error {
	return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetNX)
}

func ErrRedisUnlock(err error) error {
	return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
}

func ErrDBInsertDocument(err error) error {
	return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBInsertDocument)
}

func ErrDBFindDocument(err error) error {
	return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFindDocument)
}

func ErrMinioCreateObject(err error, bucketName string) error {
	return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioCreateObject, bucketName))
}

func ErrMinioPresignObject(err error, bucketName string) error {
	return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioPresignObject, bucketName))
}

func ErrRabbitMQPublishMessage(err error, queueName string) error {
	return BuildNewCustomError(err, http.StatusBadGateway, constvars.ErrClientEmergencyDelivery, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queueName))
}

func ErrCatalogInvalid(err error) error {
	return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCatalogInvalid)
}
