package validate

import "github.com/finance-tracker/backend/internal/model"

// Rule tables below replicate the per-DTO rule sets of the API contract,
// message for message. Update variants mark every field only-when-present;
// a present-but-invalid optional field still fails.

func CreateUserRules(r model.CreateUserRequest) []Rule {
	return []Rule{
		{OK: present(r.FirstName), Message: "First name is required"},
		{When: present(r.FirstName), OK: lengthBetween(r.FirstName, 2, 50), Message: "First name must be between 2 and 50 characters"},
		{When: present(r.FirstName), OK: personName(r.FirstName), Message: "First name can only contain letters, spaces, hyphens, and apostrophes"},
		{OK: present(r.LastName), Message: "Last name is required"},
		{When: present(r.LastName), OK: lengthBetween(r.LastName, 2, 50), Message: "Last name must be between 2 and 50 characters"},
		{When: present(r.LastName), OK: personName(r.LastName), Message: "Last name can only contain letters, spaces, hyphens, and apostrophes"},
		{OK: present(r.Email), Message: "Email is required"},
		{When: present(r.Email), OK: matches(reEmail, r.Email), Message: "Invalid email format"},
		{When: present(r.Email), OK: maxLength(r.Email, 255), Message: "Email must not exceed 255 characters"},
		{OK: present(r.Password), Message: "Password is required"},
		{When: present(r.Password), OK: func() bool { return len(r.Password) >= 8 }, Message: "Password must be at least 8 characters long"},
		{When: present(r.Password), OK: maxLength(r.Password, 100), Message: "Password must not exceed 100 characters"},
		{When: present(r.Password), OK: matches(reLower, r.Password), Message: "Password must contain at least one lowercase letter"},
		{When: present(r.Password), OK: matches(reUpper, r.Password), Message: "Password must contain at least one uppercase letter"},
		{When: present(r.Password), OK: matches(reDigit, r.Password), Message: "Password must contain at least one number"},
		{When: present(r.Role), OK: maxLength(r.Role, 50), Message: "Role must not exceed 50 characters"},
	}
}

func UpdateUserRules(r model.UpdateUserRequest) []Rule {
	return []Rule{
		{When: present(r.FirstName), OK: lengthBetween(r.FirstName, 2, 50), Message: "First name must be between 2 and 50 characters"},
		{When: present(r.FirstName), OK: personName(r.FirstName), Message: "First name can only contain letters, spaces, hyphens, and apostrophes"},
		{When: present(r.LastName), OK: lengthBetween(r.LastName, 2, 50), Message: "Last name must be between 2 and 50 characters"},
		{When: present(r.LastName), OK: personName(r.LastName), Message: "Last name can only contain letters, spaces, hyphens, and apostrophes"},
		{When: present(r.Email), OK: matches(reEmail, r.Email), Message: "Invalid email format"},
		{When: present(r.Email), OK: maxLength(r.Email, 255), Message: "Email must not exceed 255 characters"},
		{When: present(r.Password), OK: func() bool { return len(r.Password) >= 8 }, Message: "Password must be at least 8 characters long"},
		{When: present(r.Password), OK: maxLength(r.Password, 100), Message: "Password must not exceed 100 characters"},
		{When: present(r.Password), OK: matches(reLower, r.Password), Message: "Password must contain at least one lowercase letter"},
		{When: present(r.Password), OK: matches(reUpper, r.Password), Message: "Password must contain at least one uppercase letter"},
		{When: present(r.Password), OK: matches(reDigit, r.Password), Message: "Password must contain at least one number"},
		{When: present(r.Role), OK: maxLength(r.Role, 50), Message: "Role must not exceed 50 characters"},
	}
}

func CreateAccountRules(r model.CreateAccountRequest) []Rule {
	return []Rule{
		{OK: present(r.Name), Message: "Account name is required"},
		{When: present(r.Name), OK: lengthBetween(r.Name, 2, 100), Message: "Account name must be between 2 and 100 characters"},
		{When: present(r.Name), OK: matches(reAccountNameChars, r.Name), Message: "Account name can only contain letters, numbers, spaces, hyphens, and apostrophes"},
		{OK: func() bool { return r.InitialBalance >= 0 }, Message: "Initial balance must be greater than or equal to 0"},
		{OK: func() bool { return r.InitialBalance <= 999999999.99 }, Message: "Initial balance exceeds maximum allowed value"},
		{When: present(r.Description), OK: maxLength(r.Description, 500), Message: "Description must not exceed 500 characters"},
		{When: present(r.Email), OK: matches(reEmail, r.Email), Message: "Invalid email format"},
		{When: present(r.Email), OK: maxLength(r.Email, 255), Message: "Email must not exceed 255 characters"},
	}
}

func UpdateAccountRules(r model.UpdateAccountRequest) []Rule {
	return []Rule{
		{When: present(r.Name), OK: lengthBetween(r.Name, 2, 100), Message: "Account name must be between 2 and 100 characters"},
		{When: present(r.Name), OK: matches(reAccountNameChars, r.Name), Message: "Account name can only contain letters, numbers, spaces, hyphens, and apostrophes"},
		{When: present(r.Email), OK: matches(reEmail, r.Email), Message: "Invalid email format"},
		{When: present(r.Email), OK: maxLength(r.Email, 255), Message: "Email must not exceed 255 characters"},
		{When: present(r.AccountType), OK: lengthBetween(r.AccountType, 2, 50), Message: "Account type must be between 2 and 50 characters"},
		{When: present(r.AccountType), OK: matches(reAccountTypeChars, r.AccountType), Message: "Account type can only contain letters and spaces"},
		{When: present(r.Description), OK: maxLength(r.Description, 500), Message: "Description must not exceed 500 characters"},
	}
}

func LoginRules(r model.LoginRequest) []Rule {
	return []Rule{
		{OK: present(r.Email), Message: "Email is required"},
		{When: present(r.Email), OK: matches(reEmail, r.Email), Message: "Invalid email format"},
		{When: present(r.Email), OK: maxLength(r.Email, 255), Message: "Email must not exceed 255 characters"},
		{OK: present(r.Password), Message: "Password is required"},
	}
}
