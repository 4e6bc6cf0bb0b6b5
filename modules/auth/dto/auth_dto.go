package dto

type SignupRequest struct {
	HotelName string `json:"hotel_name" validate:"required,min=2,max=200"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

type SigninRequest struct {
	Subdomain string `json:"subdomain" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

type SignupResponse struct {
	TenantID  string `json:"tenant_id"`
	Subdomain string `json:"subdomain"`
	Email     string `json:"email"`
}

type SigninResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	TenantID    string `json:"tenant_id"`
	Subdomain   string `json:"subdomain"`
}
