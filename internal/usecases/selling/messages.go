package selling

const (
	MessageSaleLogged    = "Sale logged successfully! धन्यवाद 🙏"
	MessageInvalidFormat = "Invalid sale format. Use: #sale <type> <design> <price>"
	messageErrorPrefix   = "Error logging sale: "
)
