package packets

// RESPONSES FOR the public client endpoints

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type PrayerResponse struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Time        string `json:"time"`
	Instant     string `json:"instant"`
}

type NextPrayerResponse struct {
	PrayerResponse
	Countdown string `json:"countdown"`
	Seconds   int64  `json:"seconds"`
}

type PrayerTimesResponse struct {
	Location        string             `json:"location"`
	DisplayLocation string             `json:"display_location"`
	Timezone        string             `json:"timezone"`
	Date            string             `json:"date"`
	Hijri           string             `json:"hijri"`
	Prayers         []PrayerResponse   `json:"prayers"`
	Next            NextPrayerResponse `json:"next"`
}

type CityResponse struct {
	Name       string `json:"name"`
	ArabicName string `json:"arabic_name"`
}

type CountryResponse struct {
	Name       string         `json:"name"`
	ArabicName string         `json:"arabic_name"`
	Code       string         `json:"code"`
	Cities     []CityResponse `json:"cities"`
}

type LocateResponse struct {
	Location string `json:"location"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Display  string `json:"display"`
}
