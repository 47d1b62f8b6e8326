// Package account exposes the ledger endpoints: account creation, charges,
// deductions and the account statement.
package account

import (
	"strconv"

	"github.com/imansdev/ackownt/pkg/config"
	"github.com/imansdev/ackownt/pkg/middleware"
	accountsvc "github.com/imansdev/ackownt/pkg/service/account"
	authsvc "github.com/imansdev/ackownt/pkg/service/auth"
	"github.com/imansdev/ackownt/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the account endpoints. All of them act on the
// authenticated user's single account.
func Routes(
	app *fiber.App,
	accountSvc *accountsvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	app.Post("/account", middleware.JwtProtected(cfg.Jwt), CreateAccount(accountSvc, authSvc))
	app.Post("/account/charge", middleware.JwtProtected(cfg.Jwt), Charge(accountSvc, authSvc))
	app.Post("/account/deduct", middleware.JwtProtected(cfg.Jwt), Deduct(accountSvc, authSvc))
	app.Get("/account/transactions", middleware.JwtProtected(cfg.Jwt), GetTransactions(accountSvc, authSvc))
}

// amountFromRequest reads the amount from the query parameter, falling back
// to a JSON body. A missing amount is zero and fails the ledger's own
// bounds checks with the operation-specific message.
func amountFromRequest(c *fiber.Ctx) (int64, bool) {
	if raw := c.Query("amount"); raw != "" {
		amount, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, false
		}
		return amount, true
	}
	var body AmountRequest
	if err := c.BodyParser(&body); err != nil {
		return 0, true // no usable body, let the service reject the zero amount
	}
	return body.Amount, true
}

// CreateAccount opens the user's account with an initial deposit.
func CreateAccount(
	accountSvc *accountsvc.Service,
	authSvc *authsvc.Service,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := common.CurrentUserEmail(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		amount, ok := amountFromRequest(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Invalid amount", nil,
				"amount must be an integer", fiber.StatusBadRequest)
		}
		tx, err := accountSvc.CreateAccount(c.Context(), email, amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated,
			"Account created", tx)
	}
}

// Charge adds funds to the user's account.
func Charge(
	accountSvc *accountsvc.Service,
	authSvc *authsvc.Service,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := common.CurrentUserEmail(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		amount, ok := amountFromRequest(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Invalid amount", nil,
				"amount must be an integer", fiber.StatusBadRequest)
		}
		tx, err := accountSvc.Charge(c.Context(), email, amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't charge account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Charge successful", tx)
	}
}

// Deduct withdraws funds from the user's account.
func Deduct(
	accountSvc *accountsvc.Service,
	authSvc *authsvc.Service,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := common.CurrentUserEmail(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		amount, ok := amountFromRequest(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Invalid amount", nil,
				"amount must be an integer", fiber.StatusBadRequest)
		}
		tx, err := accountSvc.Deduct(c.Context(), email, amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't deduct from account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Deduction successful", tx)
	}
}

// GetTransactions returns the account projection with the transaction
// history, newest first.
func GetTransactions(
	accountSvc *accountsvc.Service,
	authSvc *authsvc.Service,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := common.CurrentUserEmail(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		statement, err := accountSvc.GetAccountAndTransactions(c.Context(), email)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't get transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Account statement", statement)
	}
}
