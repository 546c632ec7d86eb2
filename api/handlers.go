package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"banking-management/bank"
	"banking-management/models"
	"banking-management/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CustomerRequest struct {
	ID      int    `json:"id" binding:"required,gt=0"`
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type OpenAccountRequest struct {
	Type           models.AccountKind `json:"type" binding:"required"`
	AccountNumber  string             `json:"accountNumber" binding:"required"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
}

type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type TransactionResponse struct {
	models.Receipt
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type InterestResponse struct {
	Interest decimal.Decimal       `json:"interest"`
	Account  models.AccountDetails `json:"account"`
}

// Handler serves the teller operations over HTTP
type Handler struct {
	teller *bank.Teller
}

func NewHandler(teller *bank.Teller) *Handler {
	return &Handler{teller: teller}
}

func (h *Handler) createCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body"}})
		return
	}
	customer, err := h.teller.AddCustomer(c.Request.Context(), bank.NewCustomer{
		ID:      req.ID,
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	log.Printf("Created customer %d", customer.ID)
	c.JSON(http.StatusCreated, customer.Details())
}

func (h *Handler) getCustomer(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}
	details, err := h.teller.Customer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *Handler) openAccount(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}
	var req OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body"}})
		return
	}
	account, err := h.teller.OpenAccount(c.Request.Context(), id, bank.OpenAccount{
		Kind:           req.Type,
		Number:         req.AccountNumber,
		InitialBalance: req.InitialBalance,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	log.Printf("Opened %s account %s for customer %d", account.Kind(), account.Number(), id)
	c.JSON(http.StatusCreated, account.Details())
}

func (h *Handler) deposit(c *gin.Context) {
	h.transact(c, h.teller.Deposit)
}

func (h *Handler) withdraw(c *gin.Context) {
	h.transact(c, h.teller.Withdraw)
}

type transactFunc func(ctx context.Context, customerID int, number string, amount decimal.Decimal) (models.Receipt, error)

// transact runs a deposit or withdrawal. A policy denial is answered with
// 422 and the receipt, since the transaction itself completed.
func (h *Handler) transact(c *gin.Context, exec transactFunc) {
	id, ok := customerID(c)
	if !ok {
		return
	}
	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body"}})
		return
	}
	receipt, err := exec(c.Request.Context(), id, c.Param("accountNumber"), req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := TransactionResponse{Receipt: receipt, Status: "success"}
	switch {
	case receipt.Accepted():
		log.Printf("%s %s on account %s: balance %s", receipt.Kind, receipt.TransactionID, receipt.AccountNumber, receipt.Balance)
		c.JSON(http.StatusCreated, resp)
	case models.IsDenial(receipt.Outcome):
		resp.Status, resp.Reason = "denied", receipt.Outcome.Error()
		c.JSON(http.StatusUnprocessableEntity, resp)
	default:
		resp.Status, resp.Reason = "rejected", receipt.Outcome.Error()
		c.JSON(http.StatusBadRequest, resp)
	}
}

func (h *Handler) addInterest(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}
	interest, account, err := h.teller.AddInterest(c.Request.Context(), id, c.Param("accountNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, InterestResponse{Interest: interest, Account: account})
}

func (h *Handler) applyLoan(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}
	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body"}})
		return
	}
	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Amount must be positive"}})
		return
	}
	loan, err := h.teller.ApplyLoan(c.Request.Context(), id, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	log.Printf("Loan %s for customer %d approved=%t", loan.ID, id, loan.Approved)
	c.JSON(http.StatusOK, loan.Status())
}

func customerID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Customer ID must be a number"}})
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
	case errors.Is(err, store.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
	case errors.Is(err, store.ErrDuplicateCustomer), errors.Is(err, models.ErrDuplicateAccount):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, bank.ErrInvalidInput), errors.Is(err, bank.ErrInvalidAccountType), errors.Is(err, models.ErrNotSavings):
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{err.Error()}})
	default:
		log.Printf("Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
