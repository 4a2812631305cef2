package postmark

// Config holds Postmark credentials and sender identity.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN,required"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN,required"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	SupportEmail         string `env:"SUPPORT_EMAIL,required"`
	TrackOpens           bool   `env:"POSTMARK_TRACK_OPENS" envDefault:"true"`
	TrackLinks           string `env:"POSTMARK_TRACK_LINKS" envDefault:"HtmlOnly"` // None, HtmlAndText, HtmlOnly or TextOnly
}
