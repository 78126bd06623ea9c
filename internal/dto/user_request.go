package dto

type RegisterRequest struct {
	Name      string `json:"name"`
	ShopName  string `json:"shopName"`
	Location  string `json:"location"`
	Contact   int64  `json:"contact"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type EditUserRequest struct {
	ID                 string `json:"-"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	ShopName           string `json:"shopName"`
	Location           string `json:"location"`
	Contact            int64  `json:"contact"`
	CurrentPassword    string `json:"currentPassword"`
	NewPassword        string `json:"newPassword"`
	NewConfirmPassword string `json:"newConfirmPassword"`
}
