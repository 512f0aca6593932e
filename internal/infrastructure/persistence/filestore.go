package persistence

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gestormx/gestor-comercial/internal/domain/entity"
)

var _ SnapshotStore = (*FileStore)(nil)

// FileStore persiste cada clave como un archivo JSON bajo un directorio de
// datos. Las escrituras son atómicas por clave: archivo temporal + rename,
// para no dejar un JSON a medias si el proceso muere a mitad de escritura.
type FileStore struct {
	dir string
}

// NewFileStore crea el directorio si no existe y devuelve el almacén.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Cargar lee todas las claves presentes en el directorio.
func (s *FileStore) Cargar(_ context.Context) (*entity.Estado, error) {
	docs := map[string][]byte{}
	for _, clave := range entity.Claves() {
		datos, err := os.ReadFile(s.ruta(clave))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("leer %s: %w", clave, err)
		}
		docs[clave] = datos
	}
	return armar(docs)
}

// Guardar reescribe el archivo de cada clave con el snapshot recibido.
func (s *FileStore) Guardar(_ context.Context, e *entity.Estado) error {
	docs, err := fragmentos(e)
	if err != nil {
		return err
	}
	for clave, datos := range docs {
		if err := s.escribirAtomico(clave, datos); err != nil {
			return err
		}
	}
	return nil
}

func (s *FileStore) escribirAtomico(clave string, datos []byte) error {
	tmp, err := os.CreateTemp(s.dir, clave+"-*.tmp")
	if err != nil {
		return fmt.Errorf("archivo temporal %s: %w", clave, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(datos); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir %s: %w", clave, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar %s: %w", clave, err)
	}
	if err := os.Rename(tmp.Name(), s.ruta(clave)); err != nil {
		return fmt.Errorf("promover %s: %w", clave, err)
	}
	return nil
}

func (s *FileStore) ruta(clave string) string {
	return filepath.Join(s.dir, clave+".json")
}
