package client

import "backoffice/internal/entities"

func ToDomain(c *ClientDB) *entities.Client {
	if c == nil {
		return nil
	}
	return &entities.Client{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}
