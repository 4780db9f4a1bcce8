package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	customerapp "github.com/sahanperera/repairshop-backend/application/customer"
	employeeapp "github.com/sahanperera/repairshop-backend/application/employee"
	jobapp "github.com/sahanperera/repairshop-backend/application/job"
	productapp "github.com/sahanperera/repairshop-backend/application/product"
	"github.com/sahanperera/repairshop-backend/thirdparty/filestore"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	CustomerApp customerapp.CustomerApp
	EmployeeApp employeeapp.EmployeeApp
	ProductApp  productapp.ProductApp
	JobApp      jobapp.JobApp
	Files       *filestore.Store
}

func NewTransport(customerApp customerapp.CustomerApp, employeeApp employeeapp.EmployeeApp, productApp productapp.ProductApp, jobApp jobapp.JobApp, files *filestore.Store) http.Handler {
	r := mux.NewRouter()

	rh := &RestHandler{
		CustomerApp: customerApp,
		EmployeeApp: employeeApp,
		ProductApp:  productApp,
		JobApp:      jobApp,
		Files:       files,
	}

	// Swagger UI
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Uploaded product images
	r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(files.Dir()))))

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/customers/register", rh.RegisterCustomer).Methods(http.MethodPost)
	api.HandleFunc("/customers/all", rh.GetAllCustomers).Methods(http.MethodGet)
	api.HandleFunc("/customers/phone/{phoneNumber}", rh.GetCustomerByPhone).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id:[0-9]+}", rh.GetCustomer).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id:[0-9]+}", rh.UpdateCustomer).Methods(http.MethodPut)
	api.HandleFunc("/customers/{id:[0-9]+}", rh.PatchCustomer).Methods(http.MethodPatch)
	api.HandleFunc("/customers/{id:[0-9]+}", rh.DeleteCustomer).Methods(http.MethodDelete)

	api.HandleFunc("/employees/register", rh.RegisterEmployee).Methods(http.MethodPost)
	api.HandleFunc("/employees/all", rh.GetAllEmployees).Methods(http.MethodGet)
	api.HandleFunc("/employees/{id:[0-9]+}", rh.GetEmployee).Methods(http.MethodGet)
	api.HandleFunc("/employees/{id:[0-9]+}", rh.UpdateEmployee).Methods(http.MethodPut)
	api.HandleFunc("/employees/{id:[0-9]+}", rh.DeleteEmployee).Methods(http.MethodDelete)

	api.HandleFunc("/products/add", rh.AddProduct).Methods(http.MethodPost)
	api.HandleFunc("/products/all", rh.GetAllProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id:[0-9]+}", rh.GetProduct).Methods(http.MethodGet)
	api.HandleFunc("/products/{id:[0-9]+}", rh.UpdateProduct).Methods(http.MethodPut)
	api.HandleFunc("/products/{id:[0-9]+}", rh.DeleteProduct).Methods(http.MethodDelete)

	api.HandleFunc("/jobs/add", rh.AddJob).Methods(http.MethodPost)
	api.HandleFunc("/jobs/all", rh.GetAllJobs).Methods(http.MethodGet)
	api.HandleFunc("/jobs/{id:[0-9]+}", rh.GetJob).Methods(http.MethodGet)
	api.HandleFunc("/jobs/{id:[0-9]+}/status", rh.UpdateJobStatus).Methods(http.MethodPatch)
	api.HandleFunc("/jobs/{id:[0-9]+}", rh.DeleteJob).Methods(http.MethodDelete)

	// middleware
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware())

	return r
}

func pathID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}
