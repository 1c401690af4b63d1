package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bosnamedia/bosna-backend/models"
	"github.com/bosnamedia/bosna-backend/pkg"
)

// FileContentRepository, içerik dokümanlarını JSON dosyalarında tutar.
//
// Her içerik türü kendi dosyasında yaşar: {dataDir}/{type}.json.
// Dosya formatı dış dünya ile paylaşılan bir kontrat — admin paneli ve
// statik site üretimi aynı dosyaları okur — o yüzden 2 boşluk girintili
// okunabilir JSON yazılır.
type FileContentRepository struct {
	dataDir string

	// İçerik türü başına bir mutex. Update kilidi tüm oku-değiştir-yaz
	// döngüsü boyunca tutar — aynı türe eşzamanlı mutasyonlar serialize
	// edilir, FARKLI türler birbirini bloklamaz.
	mu    sync.Mutex
	locks map[models.ContentType]*sync.Mutex
}

// NewFileContentRepository, yeni bir dosya tabanlı içerik deposu oluşturur.
// Veri dizini yoksa oluşturulur.
func NewFileContentRepository(dataDir string) (*FileContentRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create content data directory: %w", err)
	}

	return &FileContentRepository{
		dataDir: dataDir,
		locks:   make(map[models.ContentType]*sync.Mutex),
	}, nil
}

// lockFor, içerik türünün mutex'ini döner (yoksa oluşturur).
func (r *FileContentRepository) lockFor(contentType models.ContentType) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[contentType]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[contentType] = lock
	}
	return lock
}

// filePath, içerik türünün JSON dosya yolunu döner.
// contentType schema tablosundan doğrulanmış gelir; path traversal riski yok.
func (r *FileContentRepository) filePath(contentType models.ContentType) string {
	return filepath.Join(r.dataDir, string(contentType)+".json")
}

// Read, içerik dosyasını okuyup parse eder.
func (r *FileContentRepository) Read(contentType models.ContentType) (models.Document, error) {
	lock := r.lockFor(contentType)
	lock.Lock()
	defer lock.Unlock()

	return r.readLocked(contentType)
}

// Write, dokümanı 2 boşluk girintili JSON olarak diske yazar.
func (r *FileContentRepository) Write(contentType models.ContentType, doc models.Document) error {
	lock := r.lockFor(contentType)
	lock.Lock()
	defer lock.Unlock()

	return r.writeLocked(contentType, doc)
}

// Update, kilidi tüm döngü boyunca tutarak okur, mutate'i uygular ve yazar.
// İki eşzamanlı Update aynı başlangıç dokümanını okuyamaz — ikincisi,
// birincisinin yazdığı halin üzerinde çalışır.
func (r *FileContentRepository) Update(contentType models.ContentType, mutate func(models.Document) (models.Document, error)) error {
	lock := r.lockFor(contentType)
	lock.Lock()
	defer lock.Unlock()

	doc, err := r.readLocked(contentType)
	if err != nil {
		return err
	}

	updated, err := mutate(doc)
	if err != nil {
		return err
	}

	return r.writeLocked(contentType, updated)
}

// readLocked, kilit caller'da varsayarak dosyayı okur.
func (r *FileContentRepository) readLocked(contentType models.ContentType) (models.Document, error) {
	data, err := os.ReadFile(r.filePath(contentType))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: content %q", pkg.ErrNotFound, contentType)
		}
		return nil, fmt.Errorf("%w: %v", pkg.ErrReadFailure, err)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		// Diskteki dosya bozuksa bu bir server hatasıdır, client hatası değil
		return nil, fmt.Errorf("%w: %v", pkg.ErrReadFailure, err)
	}

	return doc, nil
}

// writeLocked, kilit caller'da varsayarak dokümanı diske yazar.
//
// Yazma atomiktir: önce aynı dizinde temp dosyaya yazılır, sonra rename
// edilir. Yazma ortasında process ölürse eski dosya bozulmadan kalır.
func (r *FileContentRepository) writeLocked(contentType models.ContentType, doc models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", pkg.ErrWriteFailure, err)
	}

	tmp, err := os.CreateTemp(r.dataDir, string(contentType)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", pkg.ErrWriteFailure, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", pkg.ErrWriteFailure, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", pkg.ErrWriteFailure, err)
	}

	if err := os.Rename(tmpPath, r.filePath(contentType)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", pkg.ErrWriteFailure, err)
	}

	return nil
}

// Exists, içerik dosyasının diskte olup olmadığını söyler.
func (r *FileContentRepository) Exists(contentType models.ContentType) bool {
	_, err := os.Stat(r.filePath(contentType))
	return err == nil
}

// GenerateID, koleksiyon öğeleri için benzersiz bir string ID üretir.
//
// Format: {unixMilli-base36}-{uuid ilk 8 karakter}
// Timestamp bileşeni ID'leri kabaca kronolojik sıralanabilir yapar,
// uuid bileşeni aynı milisaniyedeki çakışmaları engeller.
func GenerateID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return ts + "-" + suffix
}
