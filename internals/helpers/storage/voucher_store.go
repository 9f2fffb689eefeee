// file: internals/helpers/storage/voucher_store.go
package helper

import (
	"errors"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dalp10/CobrosBackend/internals/configs"
)

// Extensiones aceptadas para vouchers de pago
var extensionesPermitidas = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".pdf":  true,
}

var (
	ErrExtensionInvalida = errors.New("solo se permiten imágenes JPG, PNG, WEBP o PDF")
	ErrArchivoMuyGrande  = errors.New("archivo demasiado grande")
)

// EnsureUploadsDir crea la carpeta de uploads si no existe.
func EnsureUploadsDir() error {
	return os.MkdirAll(configs.UploadsDir, 0o755)
}

// GuardarVoucher persiste el archivo subido y devuelve (url pública, nombre
// original). El nombre en disco es aleatorio para evitar colisiones.
func GuardarVoucher(c *fiber.Ctx, fh *multipart.FileHeader) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !extensionesPermitidas[ext] {
		return "", "", ErrExtensionInvalida
	}
	if fh.Size > int64(configs.MaxFileSizeMB)*1024*1024 {
		return "", "", ErrArchivoMuyGrande
	}

	if err := EnsureUploadsDir(); err != nil {
		return "", "", err
	}

	nombreDisco := "voucher-" + uuid.NewString() + ext
	destino := filepath.Join(configs.UploadsDir, nombreDisco)
	if err := c.SaveFile(fh, destino); err != nil {
		return "", "", err
	}

	return "/uploads/" + nombreDisco, fh.Filename, nil
}

// EliminarVoucher borra el archivo referenciado por la URL pública.
// Best effort: si el archivo ya no existe no es un error.
func EliminarVoucher(imagenURL *string) {
	if imagenURL == nil || *imagenURL == "" {
		return
	}
	nombre := filepath.Base(*imagenURL)
	ruta := filepath.Join(configs.UploadsDir, nombre)
	if err := os.Remove(ruta); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] No se pudo eliminar voucher %s: %v", ruta, err)
	}
}
