package contract

import (
	"net/http"

	"hr-console/internal/shared/apperror"
)

var ErrContractNotFound = apperror.New(
	"CONTRACT_NOT_FOUND",
	"Contract not found",
	http.StatusNotFound,
)
