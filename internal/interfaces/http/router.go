package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/casamedica/distribucion-api/internal/application/auth"
	"github.com/casamedica/distribucion-api/internal/application/pedidos"
	"github.com/casamedica/distribucion-api/internal/application/stock"
	"github.com/casamedica/distribucion-api/internal/application/usecase"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	ProductoUC    *usecase.ProductoUseCase
	LaboratorioUC *usecase.LaboratorioUseCase
	PaqueteriaUC  *usecase.PaqueteriaUseCase
	PromocionUC   *usecase.PromocionUseCase
	DireccionUC   *usecase.DireccionUseCase
	ClienteUC     *usecase.ClienteUseCase
	Ledger        *stock.Ledger
	PedidosUC     *pedidos.UseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Registro y login (público)
	usuarioHandler := NewUsuarioHandler(deps.AuthUC)
	api.Post("/usuarios", usuarioHandler.Register)
	api.Post("/usuarios/login", usuarioHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (protegido; la gestión es de personal interno)
	usuarios := protected.Group("/usuarios")
	usuarios.Get("/", RequireInterno(), usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Delete("/:id", RequireInterno(entity.RolAdministrador), usuarioHandler.Delete)

	// Productos (lectura para cualquier autenticado, escritura interna)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.List)
	productos.Get("/search", productoHandler.Search)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Post("/", RequireInterno(entity.RolAdministrador, entity.RolAlmacenista), productoHandler.Create)
	productos.Put("/:id", RequireInterno(entity.RolAdministrador, entity.RolAlmacenista), productoHandler.Update)
	productos.Delete("/:id", RequireInterno(entity.RolAdministrador), productoHandler.Delete)

	// Inventario (solo personal de almacén)
	inventario := protected.Group("/inventario", RequireInterno(entity.RolAdministrador, entity.RolAlmacenista))
	inventarioHandler := NewInventarioHandler(deps.Ledger)
	inventario.Post("/", inventarioHandler.RecibirLote)
	inventario.Get("/", inventarioHandler.List)
	inventario.Get("/producto/:producto", inventarioHandler.PorProducto)
	inventario.Get("/:id", inventarioHandler.GetByID)
	inventario.Put("/:id", inventarioHandler.Ajustar)
	inventario.Delete("/:id", inventarioHandler.Baja)

	// Pedidos
	pedidosGroup := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidosUC)
	pedidosGroup.Post("/", pedidoHandler.Create)
	pedidosGroup.Get("/", RequireInterno(), pedidoHandler.List)
	pedidosGroup.Get("/cliente/:id", pedidoHandler.PorCliente)
	pedidosGroup.Get("/:id", pedidoHandler.GetByID)
	pedidosGroup.Get("/:id/comprobante", pedidoHandler.Comprobante)
	pedidosGroup.Put("/:id", RequireInterno(entity.RolAdministrador, entity.RolEjecutivo), pedidoHandler.Update)
	pedidosGroup.Delete("/:id", pedidoHandler.Cancel)

	// Líneas de pedido
	detalles := protected.Group("/detalles")
	detalleHandler := NewDetalleHandler(deps.PedidosUC)
	detalles.Post("/", detalleHandler.Create)
	detalles.Get("/", RequireInterno(), detalleHandler.List)
	detalles.Get("/:id", detalleHandler.GetByID)
	detalles.Put("/:id", detalleHandler.Update)
	detalles.Delete("/:id", detalleHandler.Delete)

	// Direcciones de envío
	direcciones := protected.Group("/direcciones")
	direccionHandler := NewDireccionHandler(deps.DireccionUC)
	direcciones.Post("/", direccionHandler.Create)
	direcciones.Get("/", RequireInterno(), direccionHandler.List)
	direcciones.Get("/cliente/:id", direccionHandler.PorCliente)
	direcciones.Get("/:id", direccionHandler.GetByID)
	direcciones.Put("/:id", direccionHandler.Update)
	direcciones.Delete("/:id", direccionHandler.Delete)

	// Clientes (vista interna)
	clientes := protected.Group("/clientes", RequireInterno())
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/search", clienteHandler.Search)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id/notas", clienteHandler.ActualizarNotas)
	clientes.Delete("/:id", RequireInterno(entity.RolAdministrador), clienteHandler.Delete)

	// Laboratorios
	laboratorios := protected.Group("/laboratorios")
	laboratorioHandler := NewLaboratorioHandler(deps.LaboratorioUC)
	laboratorios.Get("/", laboratorioHandler.List)
	laboratorios.Get("/search", laboratorioHandler.Search)
	laboratorios.Get("/:id", laboratorioHandler.GetByID)
	laboratorios.Post("/", RequireInterno(entity.RolAdministrador, entity.RolAlmacenista), laboratorioHandler.Create)
	laboratorios.Put("/:id", RequireInterno(entity.RolAdministrador, entity.RolAlmacenista), laboratorioHandler.Update)
	laboratorios.Delete("/:id", RequireInterno(entity.RolAdministrador), laboratorioHandler.Delete)

	// Paqueterías
	paqueterias := protected.Group("/paqueterias")
	paqueteriaHandler := NewPaqueteriaHandler(deps.PaqueteriaUC)
	paqueterias.Get("/", paqueteriaHandler.List)
	paqueterias.Get("/:id", paqueteriaHandler.GetByID)
	paqueterias.Post("/", RequireInterno(entity.RolAdministrador, entity.RolEjecutivo), paqueteriaHandler.Create)
	paqueterias.Put("/:id", RequireInterno(entity.RolAdministrador, entity.RolEjecutivo), paqueteriaHandler.Update)
	paqueterias.Delete("/:id", RequireInterno(entity.RolAdministrador), paqueteriaHandler.Delete)

	// Promociones
	promociones := protected.Group("/promociones")
	promocionHandler := NewPromocionHandler(deps.PromocionUC)
	promociones.Get("/", promocionHandler.List)
	promociones.Get("/producto/:id", promocionHandler.PorProducto)
	promociones.Get("/:id", promocionHandler.GetByID)
	promociones.Post("/", RequireInterno(entity.RolAdministrador, entity.RolEjecutivo), promocionHandler.Create)
	promociones.Put("/:id", RequireInterno(entity.RolAdministrador, entity.RolEjecutivo), promocionHandler.Update)
	promociones.Delete("/:id", RequireInterno(entity.RolAdministrador), promocionHandler.Delete)
}
