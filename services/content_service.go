package services

import (
	"fmt"

	"github.com/bosnamedia/bosna-backend/models"
	"github.com/bosnamedia/bosna-backend/pkg"
	"github.com/bosnamedia/bosna-backend/repository"
)

// ContentService, içerik CRUD kurallarını uygular.
//
// Singleton tiplerde Create ve Update aynı şeydir: doküman komple değiştirilir.
// Collection tiplerde işlemler ItemsField listesinin elemanları üzerindedir ve
// her mutasyon read-modify-write'tır: dosya okunur, liste bellekte değiştirilir,
// dosya komple yazılır. Satır bazlı persistence yoktur. Döngü deponun tür
// kilidi altında yürür (repository.ContentRepository.Update).
type ContentService interface {
	// Get, tipin tüm dokümanını döner.
	Get(contentType models.ContentType) (models.Document, error)

	// Create: singleton → dokümanı body ile komple değiştirir ve body'yi döner;
	// collection → body'ye üretilmiş id ve order=len+1 ekleyip listeye append eder,
	// yeni item'ı döner.
	Create(contentType models.ContentType, body models.Document) (any, error)

	// Update: singleton → Create ile aynı (komple değiştirme);
	// collection → body["id"] ile item'ı bulur, alanları shallow-merge eder
	// (id korunur). Item yoksa pkg.ErrNotFound.
	Update(contentType models.ContentType, body models.Document) (any, error)

	// Delete, collection'dan id'li item'ı siler. Item yoksa pkg.ErrNotFound.
	// Son item silindiğinde liste boşalır ama doküman silinmez.
	Delete(contentType models.ContentType, id string) error
}

type contentService struct {
	repo repository.ContentRepository
}

// NewContentService, yeni bir ContentService oluşturur.
func NewContentService(repo repository.ContentRepository) ContentService {
	return &contentService{repo: repo}
}

// Get, tipi doğrular ve dokümanı okur.
// Tip kontrolü her işlemde dosya I/O'sundan ÖNCE yapılır.
func (s *contentService) Get(contentType models.ContentType) (models.Document, error) {
	if _, ok := models.SchemaFor(contentType); !ok {
		return nil, fmt.Errorf("%w: %q", pkg.ErrInvalidType, contentType)
	}
	return s.repo.Read(contentType)
}

func (s *contentService) Create(contentType models.ContentType, body models.Document) (any, error) {
	schema, ok := models.SchemaFor(contentType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", pkg.ErrInvalidType, contentType)
	}

	// Singleton: gelen body dokümanın yeni halidir
	if schema.Kind == models.KindSingleton {
		if err := s.repo.Write(contentType, body); err != nil {
			return nil, err
		}
		return body, nil
	}

	// Oku-değiştir-yaz tek kilit altında: iki eşzamanlı Create aynı
	// başlangıç listesini göremez, ikisi de listede kalır.
	var item models.Item
	err := s.repo.Update(contentType, func(doc models.Document) (models.Document, error) {
		items, err := itemsOf(doc, schema)
		if err != nil {
			return nil, err
		}

		// Yeni item: body + üretilmiş id + order = yeni listenin uzunluğu.
		// Client body'de id gönderse bile üzerine yazılır.
		item = models.Item{}
		for k, v := range body {
			item[k] = v
		}
		item["id"] = repository.GenerateID()
		item["order"] = len(items) + 1

		doc[schema.ItemsField] = append(items, item)
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *contentService) Update(contentType models.ContentType, body models.Document) (any, error) {
	schema, ok := models.SchemaFor(contentType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", pkg.ErrInvalidType, contentType)
	}

	if schema.Kind == models.KindSingleton {
		if err := s.repo.Write(contentType, body); err != nil {
			return nil, err
		}
		return body, nil
	}

	id, _ := body["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", pkg.ErrBadRequest)
	}

	var merged models.Item
	err := s.repo.Update(contentType, func(doc models.Document) (models.Document, error) {
		items, err := itemsOf(doc, schema)
		if err != nil {
			return nil, err
		}

		idx := indexOf(items, id)
		if idx < 0 {
			return nil, fmt.Errorf("%w: item %q", pkg.ErrNotFound, id)
		}

		// Shallow-merge: gönderilen alanlar mevcut item'ın üzerine yazılır,
		// gönderilmeyenler olduğu gibi kalır, id her durumda korunur.
		for k, v := range body {
			items[idx][k] = v
		}
		items[idx]["id"] = id
		merged = items[idx]

		doc[schema.ItemsField] = items
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func (s *contentService) Delete(contentType models.ContentType, id string) error {
	schema, ok := models.SchemaFor(contentType)
	if !ok {
		return fmt.Errorf("%w: %q", pkg.ErrInvalidType, contentType)
	}
	if schema.Kind == models.KindSingleton {
		return fmt.Errorf("%w: singleton content cannot be deleted", pkg.ErrBadRequest)
	}
	if id == "" {
		return fmt.Errorf("%w: id is required", pkg.ErrBadRequest)
	}

	return s.repo.Update(contentType, func(doc models.Document) (models.Document, error) {
		items, err := itemsOf(doc, schema)
		if err != nil {
			return nil, err
		}

		idx := indexOf(items, id)
		if idx < 0 {
			return nil, fmt.Errorf("%w: item %q", pkg.ErrNotFound, id)
		}

		doc[schema.ItemsField] = append(items[:idx], items[idx+1:]...)
		return doc, nil
	})
}

// itemsOf, dokümandaki item listesini çıkarır.
// Alan yoksa veya liste değilse ErrInvalidStructure — dosya şemaya uymuyor.
func itemsOf(doc models.Document, schema models.Schema) ([]models.Item, error) {
	raw, ok := doc[schema.ItemsField]
	if !ok {
		return nil, fmt.Errorf("%w: missing field %q", pkg.ErrInvalidStructure, schema.ItemsField)
	}

	list, ok := raw.([]any)
	if !ok {
		// Servis katmanından gelen zaten-typed liste (testler, iç kullanım)
		if typed, ok := raw.([]models.Item); ok {
			return typed, nil
		}
		return nil, fmt.Errorf("%w: field %q is not an array", pkg.ErrInvalidStructure, schema.ItemsField)
	}

	items := make([]models.Item, 0, len(list))
	for _, el := range list {
		item, ok := el.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: field %q contains a non-object element", pkg.ErrInvalidStructure, schema.ItemsField)
		}
		items = append(items, item)
	}
	return items, nil
}

// indexOf, id'si eşleşen item'ın indeksini döner, yoksa -1.
func indexOf(items []models.Item, id string) int {
	for i, item := range items {
		if itemID, ok := item["id"].(string); ok && itemID == id {
			return i
		}
	}
	return -1
}
