package helper

import (
	"log"

	"github.com/cloudinary/cloudinary-go/v2"

	"salon_manager/config"
)

// InitCloudinary builds a client from the CLOUDINARY_* variables. Image
// uploads go through it; direct browser uploads only need the signature
// endpoint.
func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return cld
}
