/*
Copyright 2026 the PetFriends QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package openapi

// AuthKey is the opaque token issued by the key endpoint.
type AuthKey struct {
	Key string `json:"key"`
}

// Pet is a pet record as returned by the service.
type Pet struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AnimalType string `json:"animal_type"`
	Age        string `json:"age"`
	PetPhoto   string `json:"pet_photo,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	UserID     string `json:"user_id,omitempty"`
}

// HasPhoto reports whether the service holds a photo for the pet.
func (p *Pet) HasPhoto() bool {
	return p.PetPhoto != ""
}

// PetList is the envelope returned by the pet listing endpoint.
type PetList struct {
	Pets []Pet `json:"pets"`
}

// IDs returns the pet identifiers in list order.
func (l *PetList) IDs() []string {
	ids := make([]string, len(l.Pets))

	for i := range l.Pets {
		ids[i] = l.Pets[i].ID
	}

	return ids
}

// Find returns the pet with the given ID, or nil.
func (l *PetList) Find(id string) *Pet {
	for i := range l.Pets {
		if l.Pets[i].ID == id {
			return &l.Pets[i]
		}
	}

	return nil
}

// PetWrite carries the form fields accepted by the create and update endpoints.
// Fields are sent verbatim, empty values included.
type PetWrite struct {
	Name       string `form:"name"`
	AnimalType string `form:"animal_type"`
	Age        string `form:"age"`
}
