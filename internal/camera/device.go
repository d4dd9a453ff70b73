package camera

import "fmt"

// DefaultPort is the port the phone camera app listens on out of the box.
const DefaultPort = 4747

// DefaultStreamPath is the MJPEG endpoint served by the camera app.
const DefaultStreamPath = "/video"

// Device identifies a network camera to probe and stream from.
type Device struct {
	Host       string `json:"host"`
	Port       int    `json:"port"`
	StreamPath string `json:"stream_path,omitempty"`
}

func (d Device) Addr() string {
	return fmt.Sprintf("%s:%d", d.Host, d.Port)
}

// StreamURL is the HTTP URL of the camera's video feed.
func (d Device) StreamURL() string {
	path := d.StreamPath
	if path == "" {
		path = DefaultStreamPath
	}
	return fmt.Sprintf("http://%s:%d%s", d.Host, d.Port, path)
}
