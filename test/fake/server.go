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

// Package fake provides an in-process PetFriends server.
//
// It reproduces the behaviour the suites rely on, quirks included: bad
// credentials and keys are refused with 403, unknown filters and animated
// photos fail with 500, deleting an unknown pet succeeds, and empty names are
// accepted. Pets are listed newest first.
package fake

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/petfriends-qa/petfriends-api-tests/pkg/openapi"

	"k8s.io/utils/ptr"
)

const (
	// DefaultEmail and DefaultPassword are the credentials registered by NewDefault.
	DefaultEmail    = "qa@petfriends.test"
	DefaultPassword = "correct-horse-battery"

	neighbourEmail    = "neighbour@petfriends.test"
	neighbourPassword = "neighbour-password"

	maxUploadBytes = 8 << 20
)

var ErrUnsupportedPhoto = errors.New("unsupported photo format")

// Credentials registers a user.
type Credentials struct {
	Email    string
	Password string
}

type user struct {
	id       string
	password string
	key      string
}

type record struct {
	id         string
	name       string
	animalType string
	age        string
	photo      *string
	createdAt  time.Time
	owner      string
}

func (r *record) pet() openapi.Pet {
	return openapi.Pet{
		ID:         r.id,
		Name:       r.name,
		AnimalType: r.animalType,
		Age:        r.age,
		PetPhoto:   ptr.Deref(r.photo, ""),
		CreatedAt:  fmt.Sprintf("%d.%06d", r.createdAt.Unix(), r.createdAt.Nanosecond()/1000),
		UserID:     r.owner,
	}
}

type ownerKey struct{}

// Server is the fake service. It is safe for concurrent use.
type Server struct {
	lock sync.Mutex

	// users by email.
	users map[string]*user

	// owners maps keys to user IDs.
	owners map[string]string

	// pets are held newest first.
	pets []*record

	router chi.Router
}

var _ http.Handler = &Server{}

// New returns a server with the given users and no pets.
func New(users ...Credentials) *Server {
	s := &Server{
		users:  map[string]*user{},
		owners: map[string]string{},
	}

	for _, credentials := range users {
		s.AddUser(credentials)
	}

	router := chi.NewRouter()
	router.Get("/api/key", s.apiKey)
	router.Group(func(r chi.Router) {
		r.Use(s.authenticate)
		r.Get("/api/pets", s.listPets)
		r.Post("/api/pets", s.createPet)
		r.Post("/api/create_pet_simple", s.createPetSimple)
		r.Put("/api/pets/{petID}", s.updatePet)
		r.Delete("/api/pets/{petID}", s.deletePet)
		r.Post("/api/pets/set_photo/{petID}", s.setPetPhoto)
	})

	s.router = router

	return s
}

// NewDefault returns a server with the default user owning two pets, and a
// neighbour owning one, so every listing starts non-empty.
func NewDefault() *Server {
	s := New(
		Credentials{Email: DefaultEmail, Password: DefaultPassword},
		Credentials{Email: neighbourEmail, Password: neighbourPassword},
	)

	s.Seed(neighbourEmail, openapi.PetWrite{Name: "Murka", AnimalType: "cat", Age: "4"})
	s.Seed(DefaultEmail, openapi.PetWrite{Name: "Sharik", AnimalType: "dog", Age: "2"})
	s.Seed(DefaultEmail, openapi.PetWrite{Name: "Barsik", AnimalType: "cat", Age: "6"})

	return s
}

// AddUser registers a user, replacing any existing one with the same email.
func (s *Server) AddUser(credentials Credentials) {
	s.lock.Lock()
	defer s.lock.Unlock()

	u := &user{
		id:       uuid.NewString(),
		password: credentials.Password,
		key:      strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", ""),
	}

	s.users[credentials.Email] = u
	s.owners[u.key] = u.id
}

// Seed creates a pet without a photo owned by the given user.
func (s *Server) Seed(email string, pet openapi.PetWrite) openapi.Pet {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.create(s.users[email].id, pet, nil).pet()
}

// Pets returns every pet, newest first.
func (s *Server) Pets() []openapi.Pet {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.list("")
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) apiKey(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	u, ok := s.users[r.Header.Get("email")]
	if !ok || u.password != r.Header.Get("password") {
		http.Error(w, "This user wasn't found in database", http.StatusForbidden)
		return
	}

	writeJSON(w, http.StatusOK, &openapi.AuthKey{Key: u.key})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		owner, ok := s.owners[r.Header.Get("auth_key")]
		s.lock.Unlock()

		if !ok {
			http.Error(w, "Please provide 'auth_key' Header", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ownerKey{}, owner)))
	})
}

func ownerFromContext(ctx context.Context) string {
	//nolint:forcetypeassert // always set by authenticate
	return ctx.Value(ownerKey{}).(string)
}

func petID(r *http.Request) string {
	id := chi.URLParam(r, "petID")

	if unescaped, err := url.PathUnescape(id); err == nil {
		return unescaped
	}

	return id
}

// list returns pets owned by owner, or all pets when owner is empty.
func (s *Server) list(owner string) []openapi.Pet {
	pets := make([]openapi.Pet, 0, len(s.pets))

	for _, rec := range s.pets {
		if owner == "" || rec.owner == owner {
			pets = append(pets, rec.pet())
		}
	}

	return pets
}

func (s *Server) lookup(owner, id string) *record {
	for _, rec := range s.pets {
		if rec.id == id && rec.owner == owner {
			return rec
		}
	}

	return nil
}

func (s *Server) create(owner string, pet openapi.PetWrite, photo *string) *record {
	rec := &record{
		id:         uuid.NewString(),
		name:       pet.Name,
		animalType: pet.AnimalType,
		age:        pet.Age,
		photo:      photo,
		createdAt:  time.Now(),
		owner:      owner,
	}

	s.pets = slices.Insert(s.pets, 0, rec)

	return rec
}

func (s *Server) listPets(w http.ResponseWriter, r *http.Request) {
	var filter openapi.Filter

	if err := filter.UnmarshalText([]byte(r.URL.Query().Get("filter"))); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	owner := ""
	if filter == openapi.FilterMyPets {
		owner = ownerFromContext(r.Context())
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	writeJSON(w, http.StatusOK, &openapi.PetList{Pets: s.list(owner)})
}

func petWrite(r *http.Request) openapi.PetWrite {
	return openapi.PetWrite{
		Name:       r.FormValue("name"),
		AnimalType: r.FormValue("animal_type"),
		Age:        r.FormValue("age"),
	}
}

// readPhoto returns the uploaded photo as a data URI. Only still JPEG and PNG
// images are accepted.
func readPhoto(r *http.Request) (*string, error) {
	file, _, err := r.FormFile("pet_photo")
	if err != nil {
		return nil, err
	}

	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	mtype := mimetype.Detect(data)
	if !mtype.Is("image/jpeg") && !mtype.Is("image/png") {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPhoto, mtype.String())
	}

	return ptr.To("data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data)), nil
}

func photoError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrUnsupportedPhoto) {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Error(w, "Bad Request", http.StatusBadRequest)
}

func (s *Server) createPet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	photo, err := readPhoto(r)
	if err != nil {
		photoError(w, err)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	writeJSON(w, http.StatusOK, s.create(ownerFromContext(r.Context()), petWrite(r), photo).pet())
}

func (s *Server) createPetSimple(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	writeJSON(w, http.StatusOK, s.create(ownerFromContext(r.Context()), petWrite(r), nil).pet())
}

func (s *Server) updatePet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	rec := s.lookup(ownerFromContext(r.Context()), petID(r))
	if rec == nil {
		http.Error(w, "Pet with this id wasn't found!", http.StatusBadRequest)
		return
	}

	pet := petWrite(r)

	rec.name = pet.Name
	rec.animalType = pet.AnimalType
	rec.age = pet.Age

	writeJSON(w, http.StatusOK, rec.pet())
}

func (s *Server) deletePet(w http.ResponseWriter, r *http.Request) {
	owner := ownerFromContext(r.Context())
	id := petID(r)

	s.lock.Lock()
	defer s.lock.Unlock()

	s.pets = slices.DeleteFunc(s.pets, func(rec *record) bool {
		return rec.id == id && rec.owner == owner
	})

	w.WriteHeader(http.StatusOK)
}

func (s *Server) setPetPhoto(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	photo, err := readPhoto(r)
	if err != nil {
		photoError(w, err)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	rec := s.lookup(ownerFromContext(r.Context()), petID(r))
	if rec == nil {
		http.Error(w, "Pet with this id wasn't found!", http.StatusBadRequest)
		return
	}

	rec.photo = photo

	writeJSON(w, http.StatusOK, rec.pet())
}
