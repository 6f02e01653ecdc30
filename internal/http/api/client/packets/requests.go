package packets

// body for POST /api/save-token
type SaveTokenRequest struct {
	Token    string `json:"token" binding:"required"`
	Location string `json:"location" binding:"required"`
	Language string `json:"language"`
}

// body for POST /api/delete-token
type DeleteTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// query of GET /api/prayer-times; the calculation fields mirror the
// client settings.
type PrayerTimesQuery struct {
	Location               string `form:"location" binding:"required"`
	Language               string `form:"lang"`
	CalculationMethod      string `form:"method"`
	JuristicMethod         string `form:"school"`
	HighLatitudeAdjustment string `form:"latitude_adjustment"`
	HourAdjustment         int    `form:"hour_adjustment"`
	Fajr                   int    `form:"fajr"`
	Dhuhr                  int    `form:"dhuhr"`
	Asr                    int    `form:"asr"`
	Maghrib                int    `form:"maghrib"`
	Isha                   int    `form:"isha"`
}

// query of GET /api/locate
type LocateQuery struct {
	Latitude  *float64 `form:"lat" binding:"required"`
	Longitude *float64 `form:"lon" binding:"required"`
	Language  string   `form:"lang"`
}
