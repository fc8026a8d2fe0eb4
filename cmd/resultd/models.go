/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import "dirpx.dev/dresult/validate"

// Address is the innermost level of the composite sample.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

func (a Address) ValidationFields() []validate.Field {
	return []validate.Field{
		validate.Required("Street", a.Street),
		validate.Required("City", a.City),
		validate.Optional("Zip", a.Zip, validate.Pattern(`^[0-9]{5}$`)),
	}
}

// Profile nests an Address.
type Profile struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Address   *Address `json:"address"`
}

func (p Profile) ValidationFields() []validate.Field {
	return []validate.Field{
		validate.Required("FirstName", p.FirstName, validate.MaxLength(50)),
		validate.Required("LastName", p.LastName, validate.MaxLength(50)),
		validate.Required("Address", p.Address).Nested(p.Address),
	}
}

// User is the body of POST /users.
type User struct {
	ID       string   `json:"id,omitempty"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Age      int      `json:"age"`
	Profile  *Profile `json:"profile"`
}

func (u User) ValidationFields() []validate.Field {
	return []validate.Field{
		validate.Required("Username", u.Username, validate.MinLength(3), validate.MaxLength(32)),
		validate.Optional("Email", u.Email, validate.Email()),
		validate.Optional("Age", u.Age, validate.Range(0, 150)),
		validate.Required("Profile", u.Profile).Nested(u.Profile).WithHeader(),
	}
}

// ResetPassword is the body of POST /password/reset.
type ResetPassword struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r ResetPassword) ValidationFields() []validate.Field {
	return []validate.Field{
		validate.Required("Password", r.Password, validate.MinLength(8)),
		validate.Required("ConfirmPassword", r.ConfirmPassword, validate.Compare("Password", r.Password)),
	}
}
