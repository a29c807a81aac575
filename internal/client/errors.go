package client

import "errors"

var errNoDescriptorService = errors.New("client services have no descriptor service")
