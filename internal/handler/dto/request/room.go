package request

import (
	"encoding/base64"

	"innkeeper/internal/usecase/commands"
)

type CreateRoomRequest struct {
	Number            int      `json:"number" binding:"required,gt=0"`
	Category          string   `json:"category" binding:"required"`
	BedType           string   `json:"bed_type"`
	View              string   `json:"view"`
	RateCents         int64    `json:"rate_cents" binding:"gte=0"`
	Capacity          int      `json:"capacity" binding:"required,gte=1"`
	Amenities         []string `json:"amenities"`
	PubliclyVisible   bool     `json:"publicly_visible"`
	PublicDescription string   `json:"public_description"`
	Images            []string `json:"images"` // base64-encoded
}

func (r *CreateRoomRequest) ToParams() (commands.CreateRoomParams, error) {
	images, err := decodeImages(r.Images)
	if err != nil {
		return commands.CreateRoomParams{}, err
	}
	return commands.CreateRoomParams{
		Number:            r.Number,
		Category:          r.Category,
		BedType:           r.BedType,
		View:              r.View,
		RateCents:         r.RateCents,
		Capacity:          r.Capacity,
		Amenities:         r.Amenities,
		PubliclyVisible:   r.PubliclyVisible,
		PublicDescription: r.PublicDescription,
		Images:            images,
	}, nil
}

type UpdateRoomRequest struct {
	Category          *string  `json:"category"`
	BedType           *string  `json:"bed_type"`
	View              *string  `json:"view"`
	RateCents         *int64   `json:"rate_cents"`
	Capacity          *int     `json:"capacity"`
	Amenities         []string `json:"amenities"`
	PubliclyVisible   *bool    `json:"publicly_visible"`
	PublicDescription *string  `json:"public_description"`
	RemoveImageURLs   []string `json:"remove_image_urls"`
	NewImages         []string `json:"new_images"` // base64-encoded
}

func (r *UpdateRoomRequest) ToParams() (commands.UpdateRoomParams, error) {
	images, err := decodeImages(r.NewImages)
	if err != nil {
		return commands.UpdateRoomParams{}, err
	}
	return commands.UpdateRoomParams{
		Category:          r.Category,
		BedType:           r.BedType,
		View:              r.View,
		RateCents:         r.RateCents,
		Capacity:          r.Capacity,
		Amenities:         r.Amenities,
		PubliclyVisible:   r.PubliclyVisible,
		PublicDescription: r.PublicDescription,
		RemoveImageURLs:   r.RemoveImageURLs,
		NewImages:         images,
	}, nil
}

func decodeImages(encoded []string) ([][]byte, error) {
	if len(encoded) == 0 {
		return nil, nil
	}
	images := make([][]byte, 0, len(encoded))
	for _, e := range encoded {
		data, err := base64.StdEncoding.DecodeString(e)
		if err != nil {
			return nil, err
		}
		images = append(images, data)
	}
	return images, nil
}
