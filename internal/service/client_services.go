package service

import (
	"github.com/MKhiriev/go-soft-descriptor/internal/adapter"
	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
)

type ClientServices struct {
	DescriptorService ClientDescriptorService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		DescriptorService: NewClientDescriptorService(serverAdapter, logger),
	}
}
