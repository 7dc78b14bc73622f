// Package common contains shared constants and sentinel errors used across
// bnet-enroll components.
package common

// EnrollPath is the provisioning endpoint path, relative to a region base URL.
const EnrollPath = "/enrollment/enroll2.htm"

// ContentTypeOctetStream is the content type of both the enrollment request
// and response bodies.
const ContentTypeOctetStream = "application/octet-stream"
