package dtos

type UserResponse struct {
	Id        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type SettingsRequest struct {
	CityName  string  `json:"city_name" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Timezone  string  `json:"timezone" validate:"required,timezone"`
}

type SettingsResponse struct {
	CityName  string  `json:"city_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	UpdatedAt string  `json:"updated_at"`
}

type UpdateSettingsResponse struct {
	Settings         SettingsResponse `json:"settings"`
	LocationChanged  bool             `json:"location_changed"`
	SyncedDays       int              `json:"synced_days"`
	FailedSyncedDays int              `json:"failed_synced_days"`
}
