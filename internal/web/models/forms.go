package models

// RegisterForm is bound from the registration form.
type RegisterForm struct {
	Name     string `form:"name" binding:"required,max=255"`
	Email    string `form:"email" binding:"required,email,max=255"`
	Password string `form:"password" binding:"required"`
}

// LoginForm is bound from the login form.
type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// DatesForm is bound from the availability form on the cottage page.
type DatesForm struct {
	CheckIn  string `form:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string `form:"check_out" validate:"required,datetime=2006-01-02"`
}
