package cmd

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	NominatimBaseURL   string
	NominatimUserAgent string
	UploadsDir         string
	UploadsURLPrefix   string
}
