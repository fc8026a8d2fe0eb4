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

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/severity"
	"dirpx.dev/dresult/status"
)

type address struct {
	ZipCode string
	City    string
}

func (a address) ValidationFields() []Field {
	return []Field{
		Required("ZipCode", a.ZipCode, Pattern(`^[0-9]{5}$`)),
		Required("City", a.City),
	}
}

type profile struct {
	FirstName string
	LastName  string
	Address   address
}

func (p profile) ValidationFields() []Field {
	return []Field{
		Required("FirstName", p.FirstName),
		Required("LastName", p.LastName),
		Required("Address", p.Address).Nested(p.Address),
	}
}

type user struct {
	Username string
	Email    string
	Profile  *profile
	header   bool
}

func (u user) ValidationFields() []Field {
	f := Required("Profile", u.Profile).Nested(u.Profile)
	if u.header {
		f = f.WithHeader()
	}
	return []Field{
		Required("Username", u.Username),
		Optional("Email", u.Email, Email()),
		f,
	}
}

func validUser() user {
	return user{
		Username: "JohnWick",
		Email:    "john.wick@continental",
		Profile: &profile{
			FirstName: "Jardani",
			LastName:  "Jovonovich",
			Address:   address{ZipCode: "10001", City: "New York"},
		},
	}
}

func TestTryValidate_Valid(t *testing.T) {
	ok, errs := TryValidate(validUser())
	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestTryValidate_MissingRequired(t *testing.T) {
	u := validUser()
	u.Username = "   "

	ok, errs := TryValidate(u)
	require.False(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "The Username field is required.", errs[0].Message)
	assert.Equal(t, severity.Error, errs[0].Severity)
}

// Optional-only failures are reported at Warning severity. They still make
// the object invalid unless the fail threshold is raised.
func TestTryValidate_OptionalOnly_WarningStillInvalid(t *testing.T) {
	u := validUser()
	u.Email = "not-an-address"

	ok, errs := TryValidate(u)
	assert.False(t, ok, "warnings invalidate by default")
	require.Len(t, errs, 1)
	assert.Equal(t, "The Email field is not a valid e-mail address.", errs[0].Message)
	assert.Equal(t, severity.Warning, errs[0].Severity)

	lenient := New(WithFailThreshold(severity.Error))
	ok, errs = lenient.TryValidate(u)
	assert.True(t, ok, "threshold Error lets warnings pass")
	require.Len(t, errs, 1, "warnings are still reported")
	assert.Equal(t, severity.Warning, errs[0].Severity)
}

func TestTryValidate_OptionalEmptyPasses(t *testing.T) {
	u := validUser()
	u.Email = ""

	ok, errs := TryValidate(u)
	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestTryValidate_CompositeSingleNestedError(t *testing.T) {
	u := validUser()
	u.Profile.Address.City = ""

	ok, errs := TryValidate(u)
	require.False(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, dresult.NewError("The City field is required.", severity.Error), errs[0])
}

func TestTryValidate_CompositeKeepsNestedSeverity(t *testing.T) {
	type contact struct{ Phone string }
	outer := funcValidatable(func() []Field {
		inner := funcValidatable(func() []Field {
			return []Field{Optional("Phone", "12", MinLength(5))}
		})
		return []Field{Required("Contact", contact{}).Nested(inner)}
	})

	ok, errs := TryValidate(outer)
	require.False(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, severity.Warning, errs[0].Severity)
	assert.Equal(t, "The field Phone must be a string or array type with a minimum length of '5'.", errs[0].Message)
}

func TestTryValidate_Header(t *testing.T) {
	u := validUser()
	u.header = true
	u.Profile.LastName = ""

	_, errs := TryValidate(u)
	require.Len(t, errs, 2)
	assert.Equal(t, dresult.NewError("Validation for Profile failed.", severity.Error), errs[0])
	assert.Equal(t, "The LastName field is required.", errs[1].Message)

	custom := New(WithHeaderMessage("{Name} is broken."))
	_, errs = custom.TryValidate(u)
	require.Len(t, errs, 2)
	assert.Equal(t, "Profile is broken.", errs[0].Message)
}

func TestTryValidate_NilNestedRequired(t *testing.T) {
	u := validUser()
	u.Profile = nil

	ok, errs := TryValidate(u)
	require.False(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "The Profile field is required.", errs[0].Message)
}

type mapValidatable map[string]string

func (m mapValidatable) ValidationFields() []Field {
	return []Field{Required("Key", m["key"])}
}

func TestTryValidate_NilNestedNonPointer(t *testing.T) {
	var nilFunc funcValidatable
	var nilMap mapValidatable

	v := funcValidatable(func() []Field {
		return []Field{
			Required("Contact", nil).Nested(nilFunc),
			Optional("Extra", nil).Nested(nilMap),
		}
	})

	var errs []dresult.Error
	require.NotPanics(t, func() { _, errs = TryValidate(v) })
	require.Len(t, errs, 1)
	assert.Equal(t, "The Contact field is required.", errs[0].Message)
	assert.True(t, nestedIsNil(nilFunc))
	assert.True(t, nestedIsNil(nilMap))
	assert.False(t, nestedIsNil(mapValidatable{}))
}

func TestTryValidate_FirstFailurePerField(t *testing.T) {
	v := funcValidatable(func() []Field {
		return []Field{
			Optional("Code", "x", MinLength(3), Pattern(`^[0-9]+$`), MaxLength(0)),
		}
	})

	_, errs := TryValidate(v)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "minimum length of '3'")
}

func TestTryValidate_RequiredMessage(t *testing.T) {
	v := funcValidatable(func() []Field {
		return []Field{
			Required("A", ""),
			Required("B", nil).WithRequiredMessage("B please."),
		}
	})

	_, errs := New(WithRequiredMessage("{Name} is missing.")).TryValidate(v)
	require.Len(t, errs, 2)
	assert.Equal(t, "A is missing.", errs[0].Message)
	assert.Equal(t, "B please.", errs[1].Message)
}

func TestTryValidate_SkipsFieldsWithoutRules(t *testing.T) {
	v := funcValidatable(func() []Field {
		return []Field{Optional("Free", nil)}
	})
	ok, errs := TryValidate(v)
	assert.True(t, ok)
	assert.Empty(t, errs)
}

type resetPassword struct {
	NewPassword    string
	RepeatPassword string
}

func (r resetPassword) ValidationFields() []Field {
	return []Field{
		Required("NewPassword", r.NewPassword),
		Required("RepeatPassword", r.RepeatPassword, Compare("NewPassword", r.NewPassword)),
	}
}

func TestResult_Compare(t *testing.T) {
	r := Result(resetPassword{NewPassword: "s3cret", RepeatPassword: "s3cr3t"})
	require.Equal(t, status.Invalid, r.Status())
	e, _ := r.FirstError()
	assert.Equal(t, "'RepeatPassword' and 'NewPassword' do not match.", e.Message)
	assert.Equal(t, severity.Error, e.Severity)

	assert.True(t, Result(resetPassword{NewPassword: "a", RepeatPassword: "a"}).IsSuccess())
}

func TestResultOf(t *testing.T) {
	r := ResultOf(validUser())
	require.True(t, r.IsSuccess())
	assert.Equal(t, "JohnWick", r.Value().Username)

	bad := validUser()
	bad.Username = ""
	f := ResultOf(bad)
	assert.Equal(t, status.Invalid, f.Status())
	assert.Equal(t, "", f.Value().Username)
}

type rejectAll struct{}

func (rejectAll) TryValidate(Validatable) (bool, []dresult.Error) {
	return false, []dresult.Error{dresult.Warn("rejected")}
}

func TestTryValidateWith(t *testing.T) {
	ok, errs := TryValidateWith(validUser(), rejectAll{})
	assert.False(t, ok)
	assert.Equal(t, []dresult.Error{dresult.Warn("rejected")}, errs)

	r := ResultWith(validUser(), rejectAll{})
	assert.Equal(t, status.Invalid, r.Status())

	ok, _ = TryValidateWith(validUser(), nil)
	assert.True(t, ok)
}

type funcValidatable func() []Field

func (f funcValidatable) ValidationFields() []Field { return f() }
