package domain

import "github.com/google/uuid"

type Department struct {
	Id    int
	Name  string
	Admin *uuid.UUID // must reference an existing user when set
}

func (d *Department) Equal(o *Department) bool {
	if (d == nil) != (o == nil) {
		return false
	}
	if d == nil {
		return true
	}
	if (d.Admin == nil) != (o.Admin == nil) {
		return false
	}
	if d.Admin != nil && *d.Admin != *o.Admin {
		return false
	}
	return d.Id == o.Id && d.Name == o.Name
}
