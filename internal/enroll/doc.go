// Package enroll implements the Battle.net authenticator enrollment protocol.
//
// An enrollment attempt is a chain of pure steps around one HTTP round trip:
//
//	pad, model  := cryptox.OneTimePad, GenerateRandomModel
//	request     := BuildPayload(pad, country, model)      // 38 bytes
//	ciphertext  := cryptox.Encryptor.Encrypt(request)      // modulus-sized
//	response    := client.Transport.Send(region, ciphertext)
//	parsed      := ParseResponse(response)                 // time, serial, masked secret
//	secret      := cryptox.XOR(parsed.EncryptedSecret, pad)
//
// Enroller.Enroll runs the chain and returns an immutable Device.
//
// Request layout
//
//	00 byte[20] one-time pad
//	20 byte[2]  country code, e.g. US, GB, FR, KR
//	22 byte[16] device model string
//	38 END
//
// Response layout
//
//	00 byte[8]  server time in milliseconds, big-endian
//	08 byte[17] serial, e.g. US-1306-2525-4376
//	25 byte[20] secret masked with the pad
//	45 END
package enroll
