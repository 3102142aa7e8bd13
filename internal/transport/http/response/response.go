package response

import "github.com/gin-gonic/gin"

const (
	DetailDatabaseUnavailable = "Database not available"
	DetailAccountExists       = "Account with this email or name already exists"
	DetailInvalidCredentials  = "Invalid name or password"
	DetailInvalidPayload      = "invalid request payload"
)

// ErrorPayload is the body of every failing response:
// {"detail": "<message>"}. No raw driver errors or password material
// ever reach the client through it.
type ErrorPayload struct {
	Detail string `json:"detail"`
}

func Detail(c *gin.Context, httpStatus int, detail string) {
	c.JSON(httpStatus, ErrorPayload{Detail: detail})
}
