// Package mail abstracts outbound email delivery.
//
// Use cases depend on the Mail interface and the Message payload only; the
// concrete transport (plain SMTP here, an API provider later) lives behind it.
package mail
