package present

import (
	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/object"
)

// LoginToken renders a freshly created quick-login code; qrURL links the
// scannable rendering of the code
func LoginToken(token api.LoginToken, qrURL string) object.Object {
	return wrap("Token", object.NewBuilder().
		Add("Code", object.String(token.Code)).
		Add("Status", object.Enum(token.Status)).
		Add("Private key", object.String(token.PrivateKey)).
		Add("Expiration time", timestamp(token.ExpirationTime)).
		Add("QR code image url", object.String(qrURL)).
		Build())
}

// LoginInfo renders where a quick-login code was created
func LoginInfo(info api.LoginCodeInfo) object.Object {
	return wrap("Info", object.NewBuilder().
		Add("Location", object.String(info.Location)).
		Add("Device info", object.String(info.DeviceInfo)).
		Build())
}
