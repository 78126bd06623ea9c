package dto

type LoginResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Name  string `json:"name"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ShopName string `json:"shopName"`
	Location string `json:"location"`
	Contact  int64  `json:"contact"`
	Avatar   string `json:"avatar,omitempty"`
	Products int64  `json:"products"`
}
