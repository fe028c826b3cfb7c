package machine

import "context"

var idPaths = []string{"/etc/machine-id", "/var/lib/dbus/machine-id"}

func lookup(_ context.Context) (string, error) {
	return readIDFile(idPaths)
}
