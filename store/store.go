package store

import (
	"errors"
	"sync"

	"banking-management/models"
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrAccountNotFound   = errors.New("account not found")
	ErrDuplicateCustomer = errors.New("customer id already exists")
)

// Directory is the in-memory registry of customers, kept in insertion order
type Directory struct {
	customers []*models.Customer
	mutex     sync.RWMutex
}

// NewDirectory returns an empty directory
func NewDirectory() *Directory {
	return &Directory{}
}

// AddCustomer creates a customer and appends it to the directory
func (d *Directory) AddCustomer(id int, name, address, phone string) (*models.Customer, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.findLocked(id) != nil {
		return nil, ErrDuplicateCustomer
	}
	c := models.NewCustomer(id, name, address, phone)
	d.customers = append(d.customers, c)
	return c, nil
}

// FindCustomer retrieves a customer by ID
func (d *Directory) FindCustomer(id int) (*models.Customer, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	if c := d.findLocked(id); c != nil {
		return c, nil
	}
	return nil, ErrCustomerNotFound
}

// FindAccount retrieves an account held by the given customer
func (d *Directory) FindAccount(customerID int, number string) (*models.Customer, models.Account, error) {
	c, err := d.FindCustomer(customerID)
	if err != nil {
		return nil, nil, err
	}
	a, ok := c.FindAccount(number)
	if !ok {
		return c, nil, ErrAccountNotFound
	}
	return c, a, nil
}

// HasAccountNumber reports whether any customer holds an account with number
func (d *Directory) HasAccountNumber(number string) bool {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	for _, c := range d.customers {
		if _, ok := c.FindAccount(number); ok {
			return true
		}
	}
	return false
}

// Customers returns the customers in insertion order
func (d *Directory) Customers() []*models.Customer {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	out := make([]*models.Customer, len(d.customers))
	copy(out, d.customers)
	return out
}

// linear scan, first match wins
func (d *Directory) findLocked(id int) *models.Customer {
	for _, c := range d.customers {
		if c.ID == id {
			return c
		}
	}
	return nil
}
